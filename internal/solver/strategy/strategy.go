// Package strategy scores rock-paper-scissors rounds from an encoded
// strategy guide.
package strategy

import (
	"fmt"
	"strings"
)

// Shape is one rock-paper-scissors choice.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// LosesTo returns the shape that beats the receiver.
func (shape Shape) LosesTo() Shape {
	switch shape {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Beats returns the shape the receiver beats.
func (shape Shape) Beats() Shape {
	switch shape {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// shapeScore is the base score awarded for playing a shape.
func (shape Shape) shapeScore() int {
	switch shape {
	case Rock:
		return 1
	case Paper:
		return 2
	default:
		return 3
	}
}

// parseShape decodes an opponent or player column into a shape.
// A/X rock, B/Y paper, C/Z scissors.
func parseShape(column string) (Shape, error) {
	switch column {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return Rock, fmt.Errorf("unrecognized shape column %q", column)
}

// shapeForOutcome decodes the second column as a desired outcome against the
// opponent shape: X lose, Y draw, Z win.
func shapeForOutcome(column string, opponent Shape) (Shape, error) {
	switch column {
	case "X":
		return opponent.Beats(), nil
	case "Y":
		return opponent, nil
	case "Z":
		return opponent.LosesTo(), nil
	}
	return Rock, fmt.Errorf("unrecognized outcome column %q", column)
}

// scoreRound scores one round: the shape score plus 6 for a win, 3 for a
// draw, and 0 for a loss.
func scoreRound(player, opponent Shape) int {
	score := player.shapeScore()
	switch {
	case player == opponent.LosesTo():
		score += 6
	case player == opponent:
		score += 3
	}
	return score
}

// TotalScore scores every round in the guide. When outcomeMode is false the
// second column is read as the player shape; when true it is read as the
// desired outcome.
func TotalScore(lines []string, outcomeMode bool) (int, error) {
	total := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		columns := strings.Fields(trimmed)
		if len(columns) != 2 {
			return 0, fmt.Errorf("round %q does not have two columns", trimmed)
		}
		opponent, opponentError := parseShape(columns[0])
		if opponentError != nil {
			return 0, opponentError
		}
		var player Shape
		var playerError error
		if outcomeMode {
			player, playerError = shapeForOutcome(columns[1], opponent)
		} else {
			player, playerError = parseShape(columns[1])
		}
		if playerError != nil {
			return 0, playerError
		}
		total += scoreRound(player, opponent)
	}
	return total, nil
}
