package construction

import "fmt"

// Reported when a step's reference line collapses to a point, for example
// when two vertices coincide or the triangle is flat. Unwraps to
// geom.ErrDegenerateLine.
type DegenerateError struct {
	Step Label
	Line [2]Label
	Err  error
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("computing %s onto line %s%s: %v", e.Step, e.Line[0], e.Line[1], e.Err)
}

func (e *DegenerateError) Unwrap() error {
	return e.Err
}
