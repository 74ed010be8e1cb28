package rover

import (
	"strconv"
	"strings"
)

// String returns the heading letter.
func (h Heading) String() string {
	if h > West {
		return "?"
	}
	return headingSymbols[h : h+1]
}

// MarshalText encodes a Heading as its letter, so JSON shows "N" rather than 0.
func (h Heading) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText accepts the same letters as ParseHeading.
func (h *Heading) UnmarshalText(b []byte) error {
	v, err := ParseHeading(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (in Instruction) String() string { return string(rune(in)) }

// MarshalText encodes an Instruction as its command character.
func (in Instruction) MarshalText() ([]byte, error) { return []byte{byte(in)}, nil }

// String renders the pose in the input shape "x y H".
func (p Pose) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.X))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteByte(' ')
	b.WriteString(p.Heading.String())
	return b.String()
}

// String renders the command back into the shape Parse accepts.
func (c Command) String() string {
	return strconv.Itoa(c.boundary.MaxX) + " " + strconv.Itoa(c.boundary.MaxY) + " " +
		c.start.String() + " " + c.instructions
}
