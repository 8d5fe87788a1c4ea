package engine

import "math"

// Score rates how well a yes/no question splits a candidate set. It is the
// distance of the yes-ratio from a perfect 50/50 split: 0 is ideal, 0.5 is
// degenerate (everyone answers the same way). Defined only for total > 0;
// the selector never scores an empty candidate set.
func Score(yesCount, total int) float64 {
	return math.Abs(0.5 - float64(yesCount)/float64(total))
}
