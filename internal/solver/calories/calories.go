// Package calories tallies blank-line-delimited calorie inventories and
// tracks the highest totals seen.
package calories

import (
	"fmt"
	"strconv"
	"strings"
)

const recordCount = 3

// Counter accumulates one inventory at a time while retaining the highest
// totals encountered so far.
type Counter struct {
	currentTotal int
	topRecords   [recordCount]int
}

// Add appends calories to the inventory currently being read.
func (counter *Counter) Add(value int) {
	counter.currentTotal += value
}

// Flush closes the current inventory, keeping its total if it ranks among
// the highest records, and resets the running total.
func (counter *Counter) Flush() {
	lowestRecordIndex := 0
	for recordIndex, recordValue := range counter.topRecords {
		if recordValue < counter.topRecords[lowestRecordIndex] {
			lowestRecordIndex = recordIndex
		}
	}
	if counter.currentTotal > counter.topRecords[lowestRecordIndex] {
		counter.topRecords[lowestRecordIndex] = counter.currentTotal
	}
	counter.currentTotal = 0
}

// Max returns the highest recorded inventory total.
func (counter *Counter) Max() int {
	highest := 0
	for _, recordValue := range counter.topRecords {
		if recordValue > highest {
			highest = recordValue
		}
	}
	return highest
}

// RecordSum returns the sum of the highest recorded inventory totals.
func (counter *Counter) RecordSum() int {
	sum := 0
	for _, recordValue := range counter.topRecords {
		sum += recordValue
	}
	return sum
}

// Count reads newline-separated integers grouped by blank lines and returns
// a Counter holding the highest group totals.
func Count(lines []string) (*Counter, error) {
	counter := &Counter{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			counter.Flush()
			continue
		}
		value, parseError := strconv.Atoi(trimmed)
		if parseError != nil {
			return nil, fmt.Errorf("calorie line %q is not numeric: %w", trimmed, parseError)
		}
		counter.Add(value)
	}
	counter.Flush()
	return counter, nil
}

// MostCalories returns the highest single inventory total.
func MostCalories(lines []string) (int, error) {
	counter, countError := Count(lines)
	if countError != nil {
		return 0, countError
	}
	return counter.Max(), nil
}

// TopThreeCalories returns the combined total of the three highest inventories.
func TopThreeCalories(lines []string) (int, error) {
	counter, countError := Count(lines)
	if countError != nil {
		return 0, countError
	}
	return counter.RecordSum(), nil
}
