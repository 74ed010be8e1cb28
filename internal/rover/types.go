// internal/rover/types.go
//
// Core type definitions for the rover simulation.
// Defines:
//   - Heading: cardinal orientation stored as an index into "NESW".
//   - Pose: a rover's (x, y, heading) at one instant.
//   - Boundary: the inclusive grid extent.
//   - Instruction: Move / RotateLeft / RotateRight.
//   - Command: immutable boundary + start pose + instruction sequence.

package rover

// headingSymbols is the fixed clockwise order of heading letters.
// A Heading is an index into this string.
const headingSymbols = "NESW"

// Heading is a cardinal orientation, always in [0,3].
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Right returns the heading one quarter turn clockwise.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// Left returns the heading one quarter turn counter-clockwise.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// delta is the unit step taken by a Move along h.
func (h Heading) delta() (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

// Instruction is a single command character.
type Instruction byte

const (
	Move        Instruction = 'M'
	RotateLeft  Instruction = 'L'
	RotateRight Instruction = 'R'
)

// Pose is a position on the grid plus a heading.
type Pose struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Heading Heading `json:"heading"`
}

// apply returns the pose that results from executing in from p.
func (p Pose) apply(in Instruction) Pose {
	switch in {
	case RotateLeft:
		p.Heading = p.Heading.Left()
	case RotateRight:
		p.Heading = p.Heading.Right()
	case Move:
		dx, dy := p.Heading.delta()
		p.X += dx
		p.Y += dy
	}
	return p
}

// Boundary is the inclusive upper-right corner of the grid; the origin is (0,0).
type Boundary struct {
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// Contains reports whether p lies inside the grid.
func (b Boundary) Contains(p Pose) bool {
	return p.X >= 0 && p.X <= b.MaxX && p.Y >= 0 && p.Y <= b.MaxY
}

// Command is a validated request. Build one with Parse or NewCommand;
// it is never modified afterwards.
type Command struct {
	boundary     Boundary
	start        Pose
	instructions string
}

// NewCommand builds a Command from already-typed parts.
// The instruction string is checked against the same rule Parse applies.
func NewCommand(b Boundary, start Pose, instructions string) (Command, error) {
	if start.Heading > West {
		return Command{}, malformed(RuleHeading, "heading index out of range")
	}
	if err := checkInstructions(instructions); err != nil {
		return Command{}, err
	}
	return Command{boundary: b, start: start, instructions: instructions}, nil
}

func (c Command) Boundary() Boundary { return c.boundary }
func (c Command) Start() Pose { return c.start }

// Instructions returns the instruction sequence in execution order.
func (c Command) Instructions() []Instruction {
	out := make([]Instruction, len(c.instructions))
	for i := 0; i < len(c.instructions); i++ {
		out[i] = Instruction(c.instructions[i])
	}
	return out
}

// Len is the number of instructions.
func (c Command) Len() int { return len(c.instructions) }
