package solver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultInputDirectory is the conventional location of puzzle input files.
const DefaultInputDirectory = "input"

// InputFileName returns the conventional input file name for a day.
func InputFileName(day int) string {
	return fmt.Sprintf("day%dinput.txt", day)
}

// ReadInputs loads the named input files from the input directory, returning
// their full contents in the same order.
func ReadInputs(inputDirectory string, fileNames []string) ([]string, error) {
	inputs := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		inputPath := filepath.Join(inputDirectory, fileName)
		contents, readError := os.ReadFile(inputPath)
		if readError != nil {
			return nil, fmt.Errorf("read input %s: %w", inputPath, readError)
		}
		inputs = append(inputs, string(contents))
	}
	return inputs, nil
}

// splitLines breaks a raw input into lines, normalizing Windows line endings
// and dropping a single trailing newline.
func splitLines(input string) []string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return strings.Split(normalized, "\n")
}
