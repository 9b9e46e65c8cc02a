// Package solver registers the puzzle days and runs them over their input
// files.
package solver

import (
	"fmt"
	"sort"

	"github.com/thesuzerain/advent-of-code/internal/solver/device"
	"github.com/thesuzerain/advent-of-code/internal/types"
)

const (
	// PartOne selects the first puzzle part.
	PartOne = 1
	// PartTwo selects the second puzzle part.
	PartTwo = 2
)

// SignalSettings carries the marker window sizes for the datastream day.
type SignalSettings struct {
	PacketMarkerLength  int
	MessageMarkerLength int
}

// RopeSettings carries the knot counts for the rope day.
type RopeSettings struct {
	ShortKnots int
	LongKnots  int
}

// Settings carries every per-day tunable resolved from configuration.
type Settings struct {
	Signal SignalSettings
	Device device.Settings
	Rope   RopeSettings
}

// solveFunc computes the answer for one part of a day from its raw inputs.
type solveFunc func(inputs []string, partTwo bool, settings Settings) (string, error)

// Solution describes one registered puzzle day.
type Solution struct {
	Day        int
	Title      string
	InputFiles []string
	solve      solveFunc
}

// Describe returns the listing view of the solution.
func (solution Solution) Describe() types.DayDescription {
	return types.DayDescription{
		Day:        solution.Day,
		Title:      solution.Title,
		InputFiles: solution.InputFiles,
	}
}

// SolvePart computes the answer for the requested part.
func (solution Solution) SolvePart(inputs []string, part int, settings Settings) (types.Answer, error) {
	if part != PartOne && part != PartTwo {
		return types.Answer{}, fmt.Errorf("day %d has no part %d", solution.Day, part)
	}
	value, solveError := solution.solve(inputs, part == PartTwo, settings)
	if solveError != nil {
		return types.Answer{}, fmt.Errorf("day %d part %d: %w", solution.Day, part, solveError)
	}
	return types.Answer{Day: solution.Day, Part: part, Value: value}, nil
}

// Registry returns every registered day in ascending day order.
func Registry() []Solution {
	solutions := []Solution{
		{Day: 1, Title: "Calorie Counting", InputFiles: []string{InputFileName(1)}, solve: solveCalories},
		{Day: 2, Title: "Rock Paper Scissors", InputFiles: []string{InputFileName(2)}, solve: solveStrategy},
		{Day: 3, Title: "Rucksack Reorganization", InputFiles: []string{InputFileName(3)}, solve: solveRucksack},
		{Day: 4, Title: "Camp Cleanup", InputFiles: []string{InputFileName(4)}, solve: solveSections},
		{Day: 5, Title: "Supply Stacks", InputFiles: []string{"day5input_starting.txt", "day5input_moving.txt"}, solve: solveCrates},
		{Day: 6, Title: "Tuning Trouble", InputFiles: []string{InputFileName(6)}, solve: solveSignal},
		{Day: 7, Title: "No Space Left On Device", InputFiles: []string{InputFileName(7)}, solve: solveDevice},
		{Day: 8, Title: "Treetop Tree House", InputFiles: []string{InputFileName(8)}, solve: solveForest},
		{Day: 9, Title: "Rope Bridge", InputFiles: []string{InputFileName(9)}, solve: solveRope},
		{Day: 10, Title: "Cathode-Ray Tube", InputFiles: []string{InputFileName(10)}, solve: solveCRT},
	}
	sort.Slice(solutions, func(first, second int) bool {
		return solutions[first].Day < solutions[second].Day
	})
	return solutions
}

// Lookup returns the solution registered for a day.
func Lookup(day int) (Solution, error) {
	for _, solution := range Registry() {
		if solution.Day == day {
			return solution, nil
		}
	}
	return Solution{}, fmt.Errorf("no solver registered for day %d", day)
}
