package forest_test

import (
	"testing"

	"github.com/thesuzerain/advent-of-code/internal/solver/forest"
)

const exampleGrid = `30373
25512
65332
33549
35390`

func TestVisibleCount(testingHandle *testing.T) {
	grid, parseError := forest.ParseGrid(exampleGrid)
	if parseError != nil {
		testingHandle.Fatalf("ParseGrid: %v", parseError)
	}
	if count := grid.VisibleCount(); count != 21 {
		testingHandle.Fatalf("VisibleCount = %d, want 21", count)
	}
}

func TestHighestScenicScore(testingHandle *testing.T) {
	grid, parseError := forest.ParseGrid(exampleGrid)
	if parseError != nil {
		testingHandle.Fatalf("ParseGrid: %v", parseError)
	}
	if score := grid.HighestScenicScore(); score != 8 {
		testingHandle.Fatalf("HighestScenicScore = %d, want 8", score)
	}
}

func TestEdgeTreesAreAlwaysVisible(testingHandle *testing.T) {
	grid, parseError := forest.ParseGrid("111\n111\n111")
	if parseError != nil {
		testingHandle.Fatalf("ParseGrid: %v", parseError)
	}
	// Only the center tree is hidden.
	if count := grid.VisibleCount(); count != 8 {
		testingHandle.Fatalf("VisibleCount = %d, want 8", count)
	}
}

func TestParseGridRejectsMalformedInput(testingHandle *testing.T) {
	for _, malformedGrid := range []string{"", "123\n12", "12a\n123"} {
		if _, parseError := forest.ParseGrid(malformedGrid); parseError == nil {
			testingHandle.Fatalf("ParseGrid accepted malformed grid %q", malformedGrid)
		}
	}
}
