// Package sections checks paired section-assignment ranges for containment
// and overlap.
package sections

import (
	"fmt"
	"strconv"
	"strings"
)

// assignmentPair is a pair of inclusive section ranges.
type assignmentPair struct {
	firstStart, firstEnd   int
	secondStart, secondEnd int
}

// parseRange unravels "2-5" into its two bounds.
func parseRange(raw string) (int, int, error) {
	bounds := strings.Split(raw, "-")
	if len(bounds) != 2 {
		return 0, 0, fmt.Errorf("range %q is not two hyphen-separated values", raw)
	}
	start, startError := strconv.Atoi(bounds[0])
	if startError != nil {
		return 0, 0, fmt.Errorf("range start %q is not an integer: %w", bounds[0], startError)
	}
	end, endError := strconv.Atoi(bounds[1])
	if endError != nil {
		return 0, 0, fmt.Errorf("range end %q is not an integer: %w", bounds[1], endError)
	}
	return start, end, nil
}

// parsePair parses a line of two comma-separated ranges such as "1-5,2-8".
func parsePair(line string) (assignmentPair, error) {
	ranges := strings.Split(line, ",")
	if len(ranges) != 2 {
		return assignmentPair{}, fmt.Errorf("assignment %q is not two comma-separated ranges", line)
	}
	firstStart, firstEnd, firstError := parseRange(ranges[0])
	if firstError != nil {
		return assignmentPair{}, firstError
	}
	secondStart, secondEnd, secondError := parseRange(ranges[1])
	if secondError != nil {
		return assignmentPair{}, secondError
	}
	if firstEnd < firstStart || secondEnd < secondStart {
		return assignmentPair{}, fmt.Errorf("assignment %q contains a reversed range", line)
	}
	return assignmentPair{
		firstStart:  firstStart,
		firstEnd:    firstEnd,
		secondStart: secondStart,
		secondEnd:   secondEnd,
	}, nil
}

// fullyContains reports whether either range encompasses the other entirely.
func (pair assignmentPair) fullyContains() bool {
	if pair.firstStart >= pair.secondStart && pair.firstEnd <= pair.secondEnd {
		return true
	}
	if pair.firstStart <= pair.secondStart && pair.firstEnd >= pair.secondEnd {
		return true
	}
	return false
}

// overlaps reports whether the two ranges share any section.
func (pair assignmentPair) overlaps() bool {
	return pair.firstEnd >= pair.secondStart && pair.secondEnd >= pair.firstStart
}

// countPairs parses every line and counts those satisfying the predicate.
func countPairs(lines []string, predicate func(assignmentPair) bool) (int, error) {
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		pair, pairError := parsePair(trimmed)
		if pairError != nil {
			return 0, pairError
		}
		if predicate(pair) {
			count++
		}
	}
	return count, nil
}

// CountFullyContained counts pairs where one range encompasses the other.
func CountFullyContained(lines []string) (int, error) {
	return countPairs(lines, assignmentPair.fullyContains)
}

// CountOverlapping counts pairs whose ranges overlap at all.
func CountOverlapping(lines []string) (int, error) {
	return countPairs(lines, assignmentPair.overlaps)
}
