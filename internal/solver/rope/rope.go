// Package rope simulates knots of a rope following its head around a grid
// and tracks where the tail has been.
package rope

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// DefaultShortKnots is the rope length for the two-knot simulation.
	DefaultShortKnots = 2
	// DefaultLongKnots is the rope length for the ten-knot simulation.
	DefaultLongKnots = 10
)

var motionPattern = regexp.MustCompile(`^([LRUD])\s(\d+)$`)

// position is one grid coordinate.
type position struct {
	x, y int
}

// Rope is a chain of knots on a grid. The head moves by parsed motions and
// every following knot stays within one square of its predecessor.
type Rope struct {
	knots      []position
	tailVisits map[position]struct{}
}

// New builds a rope of knotCount knots, all starting at the origin.
func New(knotCount int) (*Rope, error) {
	if knotCount < 1 {
		return nil, fmt.Errorf("rope needs at least one knot, got %d", knotCount)
	}
	rope := &Rope{
		knots:      make([]position, knotCount),
		tailVisits: map[position]struct{}{{}: {}},
	}
	return rope, nil
}

// ApplyMotion parses a motion line such as "R 4" (direction L, R, U or D and
// a step count) and moves the head that many single steps.
func (rope *Rope) ApplyMotion(line string) error {
	matches := motionPattern.FindStringSubmatch(line)
	if matches == nil {
		return fmt.Errorf("no motion grammar matches line %q", line)
	}
	steps, _ := strconv.Atoi(matches[2])

	var deltaX, deltaY int
	switch matches[1] {
	case "L":
		deltaX = -1
	case "R":
		deltaX = 1
	case "U":
		deltaY = 1
	case "D":
		deltaY = -1
	}

	for step := 0; step < steps; step++ {
		rope.moveHead(deltaX, deltaY)
	}
	return nil
}

// moveHead advances the head one step and lets the rest of the rope follow.
func (rope *Rope) moveHead(deltaX, deltaY int) {
	rope.knots[0].x += deltaX
	rope.knots[0].y += deltaY
	rope.follow(0)
	rope.tailVisits[rope.knots[len(rope.knots)-1]] = struct{}{}
}

// follow pulls each knot after leadIndex toward its predecessor. A knot only
// moves when more than one square away, stepping at most one square along
// each axis toward the knot ahead of it.
func (rope *Rope) follow(leadIndex int) {
	if leadIndex+1 >= len(rope.knots) {
		return
	}
	lead := rope.knots[leadIndex]
	trailing := rope.knots[leadIndex+1]

	gapX := lead.x - trailing.x
	gapY := lead.y - trailing.y
	if abs(gapX) <= 1 && abs(gapY) <= 1 {
		return
	}

	rope.knots[leadIndex+1] = position{
		x: trailing.x + sign(gapX),
		y: trailing.y + sign(gapY),
	}
	rope.follow(leadIndex + 1)
}

// TailVisitCount returns how many distinct grid positions the tail has
// occupied.
func (rope *Rope) TailVisitCount() int {
	return len(rope.tailVisits)
}

// UniqueTailVisits simulates a rope of knotCount knots over every motion
// line and returns the number of distinct tail positions.
func UniqueTailVisits(lines []string, knotCount int) (int, error) {
	rope, buildError := New(knotCount)
	if buildError != nil {
		return 0, buildError
	}
	for _, line := range lines {
		if line == "" {
			continue
		}
		if motionError := rope.ApplyMotion(line); motionError != nil {
			return 0, motionError
		}
	}
	return rope.TailVisitCount(), nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

func sign(value int) int {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	}
	return 0
}
