// Package forest analyzes a grid of tree heights for edge visibility and
// scenic scores.
package forest

import (
	"fmt"
	"strings"
)

// heightLevels is the number of distinct single-digit heights.
const heightLevels = 10

// Grid is a rectangular matrix of tree heights 0-9.
type Grid struct {
	rows    [][]int
	columns [][]int
}

// ParseGrid reads newline-separated rows of digit characters into a Grid.
// Every row must have the same length.
func ParseGrid(input string) (*Grid, error) {
	trimmed := strings.TrimSpace(input)
	rawRows := strings.Split(trimmed, "\n")

	grid := &Grid{}
	columnCount := 0
	for rowIndex, rawRow := range rawRows {
		cells := strings.TrimSpace(rawRow)
		if rowIndex == 0 {
			columnCount = len(cells)
			grid.columns = make([][]int, columnCount)
		}
		if len(cells) != columnCount || columnCount == 0 {
			return nil, fmt.Errorf("grid row %d has %d columns, want %d", rowIndex+1, len(cells), columnCount)
		}
		row := make([]int, columnCount)
		for columnIndex, cell := range cells {
			if cell < '0' || cell > '9' {
				return nil, fmt.Errorf("grid cell %q is not a single-digit height", cell)
			}
			height := int(cell - '0')
			row[columnIndex] = height
			grid.columns[columnIndex] = append(grid.columns[columnIndex], height)
		}
		grid.rows = append(grid.rows, row)
	}
	return grid, nil
}

// visibleIndices returns the indices of heights visible from either end of a
// line of trees. A tree is visible from a side when it is taller than every
// tree before it. The two sweeps may report the same index twice.
func visibleIndices(heights []int) []int {
	var visible []int
	highest := -1
	for index, height := range heights {
		if height > highest {
			visible = append(visible, index)
			highest = height
		}
	}
	highest = -1
	for offset := len(heights) - 1; offset >= 0; offset-- {
		if heights[offset] > highest {
			visible = append(visible, offset)
			highest = heights[offset]
		}
	}
	return visible
}

// VisibleCount counts the trees visible from any edge of the grid.
func (grid *Grid) VisibleCount() int {
	rowCount := len(grid.rows)
	columnCount := len(grid.columns)
	visible := make([]bool, rowCount*columnCount)

	for rowIndex, row := range grid.rows {
		for _, columnIndex := range visibleIndices(row) {
			visible[rowIndex*columnCount+columnIndex] = true
		}
	}
	for columnIndex, column := range grid.columns {
		for _, rowIndex := range visibleIndices(column) {
			visible[rowIndex*columnCount+columnIndex] = true
		}
	}

	count := 0
	for _, isVisible := range visible {
		if isVisible {
			count++
		}
	}
	return count
}

// vantageTracker sweeps along a line of trees recording, for each height,
// how far back the nearest blocking tree stands.
type vantageTracker struct {
	distanceToHeight [heightLevels]int
}

// check returns how many trees a tree of the given height can see behind it
// along the sweep, then records the tree for those that follow.
func (tracker *vantageTracker) check(height int) int {
	viewDistance := tracker.distanceToHeight[height]
	for level := 0; level < heightLevels; level++ {
		if level <= height {
			tracker.distanceToHeight[level] = 1
		} else {
			tracker.distanceToHeight[level]++
		}
	}
	return viewDistance
}

// directionalViewDistances computes, for every tree, how many trees it sees
// along each line in sweep order. Reverse sweeps walk each line backwards.
func directionalViewDistances(lines [][]int, reverse bool) [][]int {
	distances := make([][]int, len(lines))
	for lineIndex, line := range lines {
		distances[lineIndex] = make([]int, len(line))
		tracker := &vantageTracker{}
		if reverse {
			for offset := len(line) - 1; offset >= 0; offset-- {
				distances[lineIndex][offset] = tracker.check(line[offset])
			}
		} else {
			for offset, height := range line {
				distances[lineIndex][offset] = tracker.check(height)
			}
		}
	}
	return distances
}

// HighestScenicScore returns the maximum product of a tree's view distances
// in all four directions.
func (grid *Grid) HighestScenicScore() int {
	leftward := directionalViewDistances(grid.rows, false)
	rightward := directionalViewDistances(grid.rows, true)
	upward := directionalViewDistances(grid.columns, false)
	downward := directionalViewDistances(grid.columns, true)

	highest := 0
	for rowIndex := range grid.rows {
		for columnIndex := range grid.rows[rowIndex] {
			score := leftward[rowIndex][columnIndex] *
				rightward[rowIndex][columnIndex] *
				upward[columnIndex][rowIndex] *
				downward[columnIndex][rowIndex]
			if score > highest {
				highest = score
			}
		}
	}
	return highest
}
