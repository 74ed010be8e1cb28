// internal/rover/machine.go
//
// Rover state machine.
// Responsibilities:
//   - Replay a Command's instructions left to right from its start pose.
//   - Enforce the boundary: an instruction that would leave the grid is
//     discarded and the rover goes back to the start pose (a Reset).
//   - Record one trajectory entry per instruction.
//
// States: Ready (instructions remain) → Done. There is no cancellation;
// a Machine is owned by one goroutine for its whole life.

package rover

// State of a Machine.
type State int

const (
	Ready State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "ready"
}

// Reset records one boundary violation.
type Reset struct {
	Step        int         `json:"step"`        // index into the instruction sequence
	Instruction Instruction `json:"instruction"` // the discarded instruction
	Attempted   Pose        `json:"attempted"`   // pose the instruction would have produced
	ResetTo     Pose        `json:"resetTo"`     // the command's start pose
}

// Result is the terminal output of a run.
type Result struct {
	Final      Pose
	Trajectory []Pose
	Resets     []Reset
}

// Output renders the final pose as "x y H".
func (r Result) Output() string { return r.Final.String() }

// Machine executes a single Command.
type Machine struct {
	cmd        Command
	pose       Pose
	next       int
	trajectory []Pose
	resets     []Reset
}

// NewMachine returns a Machine in the Ready state (or Done for an empty sequence).
func NewMachine(cmd Command) *Machine {
	return &Machine{
		cmd:        cmd,
		pose:       cmd.start,
		trajectory: make([]Pose, 0, cmd.Len()),
	}
}

// State reports whether instructions remain.
func (m *Machine) State() State {
	if m.next >= len(m.cmd.instructions) {
		return Done
	}
	return Ready
}

// Pose is the rover's current pose.
func (m *Machine) Pose() Pose { return m.pose }

// Step applies the next instruction. It returns false once the machine is Done.
func (m *Machine) Step() bool {
	if m.State() == Done {
		return false
	}
	in := Instruction(m.cmd.instructions[m.next])
	p := m.pose.apply(in)
	if !m.cmd.boundary.Contains(p) {
		m.resets = append(m.resets, Reset{
			Step:        m.next,
			Instruction: in,
			Attempted:   p,
			ResetTo:     m.cmd.start,
		})
		p = m.cmd.start
	}
	m.pose = p
	m.trajectory = append(m.trajectory, p)
	m.next++
	return true
}

// Run steps until Done and returns the result.
func (m *Machine) Run() Result {
	for m.Step() {
	}
	return m.Result()
}

// Result snapshots the current pose, trajectory and resets.
func (m *Machine) Result() Result {
	res := Result{
		Final:      m.pose,
		Trajectory: make([]Pose, len(m.trajectory)),
		Resets:     make([]Reset, len(m.resets)),
	}
	copy(res.Trajectory, m.trajectory)
	copy(res.Resets, m.resets)
	return res
}

// Execute runs cmd from start to finish on a fresh Machine.
func Execute(cmd Command) Result { return NewMachine(cmd).Run() }

// Run parses raw and executes it. Nothing is simulated when parsing fails.
func Run(raw string) (Result, error) {
	cmd, err := Parse(raw)
	if err != nil {
		return Result{}, err
	}
	return Execute(cmd), nil
}
