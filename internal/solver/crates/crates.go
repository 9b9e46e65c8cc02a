// Package crates simulates a crane rearranging stacks of crates.
package crates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var movePattern = regexp.MustCompile(`move (\d+) from (\d+) to (\d+)`)

// Cargo holds a fixed number of LIFO crate stacks. Crates are single
// characters.
type Cargo struct {
	stacks [][]byte
}

// NewCargo creates a Cargo with the given number of empty stacks.
func NewCargo(stackCount int) *Cargo {
	return &Cargo{stacks: make([][]byte, stackCount)}
}

// ParseStartingStacks reads the drawing of the initial stack layout. The last
// line carries the one-indexed stack labels; the lines above it place crates
// as "[X]" cells four columns apart, bottom row last.
func ParseStartingStacks(lines []string) (*Cargo, error) {
	drawing := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		drawing = append(drawing, line)
	}
	if len(drawing) < 2 {
		return nil, fmt.Errorf("stack drawing needs at least a label line and one crate row")
	}

	labelLine := drawing[len(drawing)-1]
	stackCount, labelError := lastDigitIn(labelLine)
	if labelError != nil {
		return nil, labelError
	}
	cargo := NewCargo(stackCount)

	// Crate rows load bottom-up.
	for rowIndex := len(drawing) - 2; rowIndex >= 0; rowIndex-- {
		if rowError := cargo.loadRow(drawing[rowIndex]); rowError != nil {
			return nil, rowError
		}
	}
	return cargo, nil
}

// loadRow places one drawing row of crates onto the stack tops. Cells are
// four columns wide; a blank cell skips its stack.
func (cargo *Cargo) loadRow(row string) error {
	for stackIndex := range cargo.stacks {
		columnIndex := stackIndex*4 + 1
		if columnIndex >= len(row) {
			break
		}
		crate := row[columnIndex]
		if crate == ' ' {
			continue
		}
		cargo.stacks[stackIndex] = append(cargo.stacks[stackIndex], crate)
	}
	return nil
}

// ApplyMove parses a "move n from a to b" line (one-indexed stacks) and
// applies it. When grouped is false crates move one at a time, reversing
// their order; when true the whole group moves together.
func (cargo *Cargo) ApplyMove(line string, grouped bool) error {
	matches := movePattern.FindStringSubmatch(line)
	if matches == nil {
		return fmt.Errorf("no move grammar matches line %q", line)
	}
	moveCount, _ := strconv.Atoi(matches[1])
	fromIndex, _ := strconv.Atoi(matches[2])
	toIndex, _ := strconv.Atoi(matches[3])
	fromIndex--
	toIndex--

	if fromIndex < 0 || fromIndex >= len(cargo.stacks) || toIndex < 0 || toIndex >= len(cargo.stacks) {
		return fmt.Errorf("move %q references a stack outside 1-%d", line, len(cargo.stacks))
	}
	if fromIndex == toIndex {
		return nil
	}
	if len(cargo.stacks[fromIndex]) < moveCount {
		return fmt.Errorf("move %q takes more crates than stack %d holds", line, fromIndex+1)
	}

	fromStack := cargo.stacks[fromIndex]
	moved := fromStack[len(fromStack)-moveCount:]
	if grouped {
		cargo.stacks[toIndex] = append(cargo.stacks[toIndex], moved...)
	} else {
		for moveIndex := len(moved) - 1; moveIndex >= 0; moveIndex-- {
			cargo.stacks[toIndex] = append(cargo.stacks[toIndex], moved[moveIndex])
		}
	}
	cargo.stacks[fromIndex] = fromStack[:len(fromStack)-moveCount]
	return nil
}

// TopCrates returns the crate on top of each stack as a string, in stack
// order. Empty stacks contribute a space.
func (cargo *Cargo) TopCrates() string {
	var tops strings.Builder
	for _, stack := range cargo.stacks {
		if len(stack) == 0 {
			tops.WriteByte(' ')
			continue
		}
		tops.WriteByte(stack[len(stack)-1])
	}
	return tops.String()
}

// TopAfterMoves parses the starting layout, applies every move line, and
// returns the top crate of each stack.
func TopAfterMoves(startingLines, moveLines []string, grouped bool) (string, error) {
	cargo, parseError := ParseStartingStacks(startingLines)
	if parseError != nil {
		return "", parseError
	}
	for _, moveLine := range moveLines {
		if strings.TrimSpace(moveLine) == "" {
			continue
		}
		if moveError := cargo.ApplyMove(moveLine, grouped); moveError != nil {
			return "", moveError
		}
	}
	return cargo.TopCrates(), nil
}

// lastDigitIn returns the last digit character in a string as an integer,
// which on the label line of a stack drawing is the stack count (single
// digit, matching the puzzle input).
func lastDigitIn(line string) (int, error) {
	lastDigit := -1
	for _, character := range line {
		if character >= '0' && character <= '9' {
			lastDigit = int(character - '0')
		}
	}
	if lastDigit < 0 {
		return 0, fmt.Errorf("label line %q contains no stack number", line)
	}
	return lastDigit, nil
}
