package rope_test

import (
	"testing"

	"github.com/thesuzerain/advent-of-code/internal/solver/rope"
)

func shortExampleMotions() []string {
	return []string{"R 4", "U 4", "L 3", "D 1", "R 4", "D 1", "L 5", "R 2"}
}

func longExampleMotions() []string {
	return []string{"R 5", "U 8", "L 8", "D 3", "R 17", "D 10", "L 25", "U 20"}
}

func TestUniqueTailVisitsTwoKnots(testingHandle *testing.T) {
	visits, simulationError := rope.UniqueTailVisits(shortExampleMotions(), rope.DefaultShortKnots)
	if simulationError != nil {
		testingHandle.Fatalf("UniqueTailVisits: %v", simulationError)
	}
	if visits != 13 {
		testingHandle.Fatalf("two-knot tail visits = %d, want 13", visits)
	}
}

func TestUniqueTailVisitsTenKnots(testingHandle *testing.T) {
	visits, simulationError := rope.UniqueTailVisits(shortExampleMotions(), rope.DefaultLongKnots)
	if simulationError != nil {
		testingHandle.Fatalf("UniqueTailVisits: %v", simulationError)
	}
	if visits != 1 {
		testingHandle.Fatalf("ten-knot tail visits on the short example = %d, want 1", visits)
	}

	visits, simulationError = rope.UniqueTailVisits(longExampleMotions(), rope.DefaultLongKnots)
	if simulationError != nil {
		testingHandle.Fatalf("UniqueTailVisits: %v", simulationError)
	}
	if visits != 36 {
		testingHandle.Fatalf("ten-knot tail visits on the long example = %d, want 36", visits)
	}
}

func TestTailStartsAtOrigin(testingHandle *testing.T) {
	motionlessRope, buildError := rope.New(rope.DefaultShortKnots)
	if buildError != nil {
		testingHandle.Fatalf("New: %v", buildError)
	}
	if visits := motionlessRope.TailVisitCount(); visits != 1 {
		testingHandle.Fatalf("tail visits before any motion = %d, want 1", visits)
	}
}

func TestApplyMotionRejectsUnknownDirections(testingHandle *testing.T) {
	movingRope, buildError := rope.New(rope.DefaultShortKnots)
	if buildError != nil {
		testingHandle.Fatalf("New: %v", buildError)
	}
	for _, malformedLine := range []string{"X 4", "R -1", "R", "R 4 4"} {
		if motionError := movingRope.ApplyMotion(malformedLine); motionError == nil {
			testingHandle.Fatalf("ApplyMotion accepted malformed motion %q", malformedLine)
		}
	}
}

func TestNewRejectsEmptyRopes(testingHandle *testing.T) {
	if _, buildError := rope.New(0); buildError == nil {
		testingHandle.Fatalf("New accepted a rope with no knots")
	}
}
