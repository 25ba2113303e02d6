package construction

// A single projection: Target is the foot of the perpendicular from From onto
// the line through Line[0] and Line[1].
type Step struct {
	Target Label
	From   Label
	Line   [2]Label
	Tier   Tier
}

// The dependency chain, in evaluation order. A step may only reference labels
// produced by earlier steps (or the vertices); apply enforces this.
var (
	basicSteps = []Step{
		{Target: D, From: A, Line: [2]Label{B, C}, Tier: Primary},
		{Target: E, From: B, Line: [2]Label{A, C}, Tier: Primary},
		{Target: P, From: D, Line: [2]Label{A, B}, Tier: Secondary},
		{Target: Q, From: D, Line: [2]Label{B, E}, Tier: Secondary},
		{Target: S, From: D, Line: [2]Label{A, C}, Tier: Secondary},
	}

	extendedSteps = []Step{
		{Target: D, From: A, Line: [2]Label{B, C}, Tier: Primary},
		{Target: E, From: B, Line: [2]Label{A, C}, Tier: Primary},
		{Target: F, From: C, Line: [2]Label{A, B}, Tier: Primary},
		{Target: P, From: D, Line: [2]Label{A, B}, Tier: Secondary},
		{Target: Q, From: D, Line: [2]Label{B, E}, Tier: Secondary},
		{Target: R, From: D, Line: [2]Label{C, F}, Tier: Secondary},
		{Target: S, From: D, Line: [2]Label{A, C}, Tier: Secondary},
	}
)

// Steps returns a copy of the step table for the variant.
func Steps(v Variant) []Step {
	table := basicSteps
	if v == Extended {
		table = extendedSteps
	}
	return append([]Step(nil), table...)
}

// Lines that secondary steps project onto but that are not triangle sides.
// These are the altitudes (BE, and CF in the extended variant), which the
// renderer extends alongside the sides.
func AltitudeLines(v Variant) [][2]Label {
	var lines [][2]Label
	for _, step := range Steps(v) {
		if step.Tier != Secondary || isSide(step.Line) {
			continue
		}
		lines = append(lines, step.Line)
	}
	return lines
}

func isSide(line [2]Label) bool {
	return isVertex(line[0]) && isVertex(line[1])
}

func isVertex(l Label) bool {
	return l == A || l == B || l == C
}
