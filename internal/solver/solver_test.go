package solver

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitLines(testingHandle *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"a\r\nb\r\nc\r\n", []string{"a", "b", "c"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\nb\n\n", []string{"a", "b", ""}},
		{"", []string{""}},
	}
	for _, testCase := range cases {
		if got := splitLines(testCase.input); !reflect.DeepEqual(got, testCase.want) {
			testingHandle.Fatalf("splitLines(%q) = %v, want %v", testCase.input, got, testCase.want)
		}
	}
}

func TestInputFileName(testingHandle *testing.T) {
	if name := InputFileName(7); name != "day7input.txt" {
		testingHandle.Fatalf("InputFileName(7) = %q, want day7input.txt", name)
	}
}

func TestRegistryCoversTenDaysInOrder(testingHandle *testing.T) {
	solutions := Registry()
	if len(solutions) != 10 {
		testingHandle.Fatalf("registry holds %d solutions, want 10", len(solutions))
	}
	for solutionIndex, solution := range solutions {
		if solution.Day != solutionIndex+1 {
			testingHandle.Fatalf("registry position %d holds day %d", solutionIndex, solution.Day)
		}
		if solution.Title == "" {
			testingHandle.Fatalf("day %d has no title", solution.Day)
		}
		if len(solution.InputFiles) == 0 {
			testingHandle.Fatalf("day %d declares no input files", solution.Day)
		}
	}
}

func TestLookup(testingHandle *testing.T) {
	solution, lookupError := Lookup(5)
	if lookupError != nil {
		testingHandle.Fatalf("Lookup(5): %v", lookupError)
	}
	if len(solution.InputFiles) != 2 {
		testingHandle.Fatalf("day 5 declares %d input files, want 2", len(solution.InputFiles))
	}
	if _, lookupError = Lookup(11); lookupError == nil {
		testingHandle.Fatalf("Lookup accepted an unregistered day")
	}
}

func TestSolvePartValidatesPartNumbers(testingHandle *testing.T) {
	solution, lookupError := Lookup(1)
	if lookupError != nil {
		testingHandle.Fatalf("Lookup(1): %v", lookupError)
	}
	if _, solveError := solution.SolvePart([]string{"100"}, 3, Settings{}); solveError == nil {
		testingHandle.Fatalf("SolvePart accepted part 3")
	}

	answer, solveError := solution.SolvePart([]string{"100\n200\n\n50"}, PartOne, Settings{})
	if solveError != nil {
		testingHandle.Fatalf("SolvePart: %v", solveError)
	}
	if answer.Day != 1 || answer.Part != PartOne || answer.Value != "300" {
		testingHandle.Fatalf("SolvePart answer = %+v, want day 1 part 1 value 300", answer)
	}
}

func TestReadInputs(testingHandle *testing.T) {
	inputDirectory := testingHandle.TempDir()
	inputPath := filepath.Join(inputDirectory, InputFileName(1))
	if writeError := os.WriteFile(inputPath, []byte("100\n200\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("write input fixture: %v", writeError)
	}

	inputs, readError := ReadInputs(inputDirectory, []string{InputFileName(1)})
	if readError != nil {
		testingHandle.Fatalf("ReadInputs: %v", readError)
	}
	if len(inputs) != 1 || inputs[0] != "100\n200\n" {
		testingHandle.Fatalf("ReadInputs = %q, want the fixture contents", inputs)
	}

	if _, readError = ReadInputs(inputDirectory, []string{InputFileName(2)}); readError == nil {
		testingHandle.Fatalf("ReadInputs found a file that does not exist")
	}
}
