// internal/rover/parse.go
//
// Command parsing and validation.
// Input shape (space separated, runs of whitespace collapsed):
//
//	boundary_x boundary_y start_x start_y start_heading instruction_string
//
// Validation rules, each reported with its own Rule:
//   - RuleTokenCount:   exactly six tokens.
//   - RuleInteger:      tokens 0–3 are base‑10 integers.
//   - RuleHeading:      token 4 is one of N, E, S, W.
//   - RuleInstructions: token 5 uses only M, L, R (may be empty).
//
// An empty instruction string is written as a trailing separator after the
// heading ("5 5 3 3 E "). Without it the input has five tokens and fails.

package rover

import (
	"strconv"
	"strings"
	"unicode"
)

const commandTokens = 6

// Parse turns a raw command string into a Command, or fails with a
// *MalformedCommandError before anything is simulated.
func Parse(raw string) (Command, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == commandTokens-1 && endsWithSpace(raw) {
		tokens = append(tokens, "")
	}
	if len(tokens) != commandTokens {
		return Command{}, malformed(RuleTokenCount, "expected %d tokens, got %d", commandTokens, len(tokens))
	}

	ints, err := parseInts(tokens[:4], []string{"boundary_x", "boundary_y", "start_x", "start_y"})
	if err != nil {
		return Command{}, err
	}
	h, err := ParseHeading(tokens[4])
	if err != nil {
		return Command{}, err
	}
	if err := checkInstructions(tokens[5]); err != nil {
		return Command{}, err
	}

	return Command{
		boundary:     Boundary{MaxX: ints[0], MaxY: ints[1]},
		start:        Pose{X: ints[2], Y: ints[3], Heading: h},
		instructions: tokens[5],
	}, nil
}

// ParsePose parses the "x y H" shape produced by Pose.String.
func ParsePose(s string) (Pose, error) {
	tokens := strings.Fields(s)
	if len(tokens) != 3 {
		return Pose{}, malformed(RuleTokenCount, "expected 3 pose tokens, got %d", len(tokens))
	}
	ints, err := parseInts(tokens[:2], []string{"x", "y"})
	if err != nil {
		return Pose{}, err
	}
	h, err := ParseHeading(tokens[2])
	if err != nil {
		return Pose{}, err
	}
	return Pose{X: ints[0], Y: ints[1], Heading: h}, nil
}

// ParseHeading maps "N", "E", "S" or "W" to its Heading.
func ParseHeading(s string) (Heading, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(headingSymbols, s[0]); i >= 0 {
			return Heading(i), nil
		}
	}
	return 0, malformed(RuleHeading, "heading %q is not one of N, E, S, W", s)
}

func parseInts(tokens, names []string) ([]int, error) {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, malformed(RuleInteger, "%s %q is not an integer", names[i], tok)
		}
		out[i] = n
	}
	return out, nil
}

func checkInstructions(s string) error {
	for i := 0; i < len(s); i++ {
		switch Instruction(s[i]) {
		case Move, RotateLeft, RotateRight:
		default:
			return malformed(RuleInstructions, "instruction %q at position %d is not one of M, L, R", s[i], i)
		}
	}
	return nil
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRightFunc(s, unicode.IsSpace) != s
}
