package crates_test

import (
	"testing"

	"github.com/thesuzerain/advent-of-code/internal/solver/crates"
)

func exampleStartingLines() []string {
	return []string{
		"    [D]    ",
		"[N] [C]    ",
		"[Z] [M] [P]",
		" 1   2   3 ",
	}
}

func exampleMoveLines() []string {
	return []string{
		"move 1 from 2 to 1",
		"move 3 from 1 to 3",
		"move 2 from 2 to 1",
		"move 1 from 1 to 2",
	}
}

func TestTopAfterMovesSingleCrates(testingHandle *testing.T) {
	tops, movesError := crates.TopAfterMoves(exampleStartingLines(), exampleMoveLines(), false)
	if movesError != nil {
		testingHandle.Fatalf("TopAfterMoves: %v", movesError)
	}
	if tops != "CMZ" {
		testingHandle.Fatalf("single-crate tops = %q, want CMZ", tops)
	}
}

func TestTopAfterMovesGroupedCrates(testingHandle *testing.T) {
	tops, movesError := crates.TopAfterMoves(exampleStartingLines(), exampleMoveLines(), true)
	if movesError != nil {
		testingHandle.Fatalf("TopAfterMoves: %v", movesError)
	}
	if tops != "MCD" {
		testingHandle.Fatalf("grouped-crate tops = %q, want MCD", tops)
	}
}

func TestParseStartingStacksReadsDrawing(testingHandle *testing.T) {
	cargo, parseError := crates.ParseStartingStacks(exampleStartingLines())
	if parseError != nil {
		testingHandle.Fatalf("ParseStartingStacks: %v", parseError)
	}
	if tops := cargo.TopCrates(); tops != "NDP" {
		testingHandle.Fatalf("initial tops = %q, want NDP", tops)
	}
}

func TestApplyMoveValidatesBounds(testingHandle *testing.T) {
	cargo, parseError := crates.ParseStartingStacks(exampleStartingLines())
	if parseError != nil {
		testingHandle.Fatalf("ParseStartingStacks: %v", parseError)
	}
	if moveError := cargo.ApplyMove("move 1 from 9 to 1", false); moveError == nil {
		testingHandle.Fatalf("ApplyMove accepted an out-of-range stack")
	}
	if moveError := cargo.ApplyMove("move 5 from 3 to 1", false); moveError == nil {
		testingHandle.Fatalf("ApplyMove accepted taking more crates than the stack holds")
	}
	if moveError := cargo.ApplyMove("shift 1 from 1 to 2", false); moveError == nil {
		testingHandle.Fatalf("ApplyMove accepted a line outside the move grammar")
	}
}

func TestTopCratesMarksEmptyStacks(testingHandle *testing.T) {
	cargo := crates.NewCargo(3)
	if tops := cargo.TopCrates(); tops != "   " {
		testingHandle.Fatalf("empty cargo tops = %q, want three spaces", tops)
	}
}
