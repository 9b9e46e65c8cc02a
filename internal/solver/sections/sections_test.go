package sections_test

import (
	"testing"

	"github.com/thesuzerain/advent-of-code/internal/solver/sections"
)

func exampleAssignments() []string {
	return []string{
		"2-4,6-8",
		"2-3,4-5",
		"5-7,7-9",
		"2-8,3-7",
		"6-6,4-6",
		"2-6,4-8",
	}
}

func TestCountFullyContained(testingHandle *testing.T) {
	count, countError := sections.CountFullyContained(exampleAssignments())
	if countError != nil {
		testingHandle.Fatalf("CountFullyContained: %v", countError)
	}
	if count != 2 {
		testingHandle.Fatalf("CountFullyContained = %d, want 2", count)
	}
}

func TestCountOverlapping(testingHandle *testing.T) {
	count, countError := sections.CountOverlapping(exampleAssignments())
	if countError != nil {
		testingHandle.Fatalf("CountOverlapping: %v", countError)
	}
	if count != 4 {
		testingHandle.Fatalf("CountOverlapping = %d, want 4", count)
	}
}

func TestCountRejectsMalformedAssignments(testingHandle *testing.T) {
	for _, malformedLine := range []string{"2-4", "2-4,6-8,9-10", "a-4,6-8", "2-,6-8", "4-2,6-8"} {
		if _, countError := sections.CountFullyContained([]string{malformedLine}); countError == nil {
			testingHandle.Fatalf("CountFullyContained accepted malformed assignment %q", malformedLine)
		}
	}
}
