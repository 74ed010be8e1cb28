package rover

import (
	"errors"
	"fmt"
)

// ErrMalformedCommand matches every validation failure produced by this package.
var ErrMalformedCommand = errors.New("malformed command")

// Rule identifies which validation rule a command failed.
type Rule string

const (
	RuleTokenCount   Rule = "token_count"
	RuleInteger      Rule = "integer"
	RuleHeading      Rule = "heading"
	RuleInstructions Rule = "instructions"
)

// MalformedCommandError is returned by Parse, ParsePose and NewCommand.
type MalformedCommandError struct {
	Rule   Rule
	Reason string
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("malformed command (%s): %s", e.Rule, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedCommand) hold for any rule.
func (e *MalformedCommandError) Is(target error) bool { return target == ErrMalformedCommand }

func malformed(rule Rule, format string, args ...any) error {
	return &MalformedCommandError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}
