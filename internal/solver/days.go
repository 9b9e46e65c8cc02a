package solver

import (
	"strconv"
	"strings"

	"github.com/thesuzerain/advent-of-code/internal/solver/calories"
	"github.com/thesuzerain/advent-of-code/internal/solver/crates"
	"github.com/thesuzerain/advent-of-code/internal/solver/crt"
	"github.com/thesuzerain/advent-of-code/internal/solver/device"
	"github.com/thesuzerain/advent-of-code/internal/solver/forest"
	"github.com/thesuzerain/advent-of-code/internal/solver/rope"
	"github.com/thesuzerain/advent-of-code/internal/solver/rucksack"
	"github.com/thesuzerain/advent-of-code/internal/solver/sections"
	"github.com/thesuzerain/advent-of-code/internal/solver/signal"
	"github.com/thesuzerain/advent-of-code/internal/solver/strategy"
)

func solveCalories(inputs []string, partTwo bool, _ Settings) (string, error) {
	lines := splitLines(inputs[0])
	if partTwo {
		total, countError := calories.TopThreeCalories(lines)
		return strconv.Itoa(total), countError
	}
	total, countError := calories.MostCalories(lines)
	return strconv.Itoa(total), countError
}

func solveStrategy(inputs []string, partTwo bool, _ Settings) (string, error) {
	score, scoreError := strategy.TotalScore(splitLines(inputs[0]), partTwo)
	return strconv.Itoa(score), scoreError
}

func solveRucksack(inputs []string, partTwo bool, _ Settings) (string, error) {
	lines := splitLines(inputs[0])
	if partTwo {
		sum, sumError := rucksack.BadgePrioritySum(lines)
		return strconv.Itoa(sum), sumError
	}
	sum, sumError := rucksack.MisplacedPrioritySum(lines)
	return strconv.Itoa(sum), sumError
}

func solveSections(inputs []string, partTwo bool, _ Settings) (string, error) {
	lines := splitLines(inputs[0])
	if partTwo {
		count, countError := sections.CountOverlapping(lines)
		return strconv.Itoa(count), countError
	}
	count, countError := sections.CountFullyContained(lines)
	return strconv.Itoa(count), countError
}

func solveCrates(inputs []string, partTwo bool, _ Settings) (string, error) {
	startingLines := splitLines(inputs[0])
	moveLines := splitLines(inputs[1])
	return crates.TopAfterMoves(startingLines, moveLines, partTwo)
}

func solveSignal(inputs []string, partTwo bool, settings Settings) (string, error) {
	stream := strings.TrimSpace(inputs[0])
	markerLength := settings.Signal.PacketMarkerLength
	if partTwo {
		markerLength = settings.Signal.MessageMarkerLength
	}
	marker, markerError := signal.StartMarker(stream, markerLength)
	return strconv.Itoa(marker), markerError
}

func solveDevice(inputs []string, partTwo bool, settings Settings) (string, error) {
	if partTwo {
		size, solveError := device.Part2(inputs[0], settings.Device)
		return strconv.Itoa(size), solveError
	}
	sum, solveError := device.Part1(inputs[0], settings.Device)
	return strconv.Itoa(sum), solveError
}

func solveForest(inputs []string, partTwo bool, _ Settings) (string, error) {
	grid, parseError := forest.ParseGrid(inputs[0])
	if parseError != nil {
		return "", parseError
	}
	if partTwo {
		return strconv.Itoa(grid.HighestScenicScore()), nil
	}
	return strconv.Itoa(grid.VisibleCount()), nil
}

func solveRope(inputs []string, partTwo bool, settings Settings) (string, error) {
	knotCount := settings.Rope.ShortKnots
	if partTwo {
		knotCount = settings.Rope.LongKnots
	}
	visits, simulateError := rope.UniqueTailVisits(splitLines(inputs[0]), knotCount)
	return strconv.Itoa(visits), simulateError
}

func solveCRT(inputs []string, partTwo bool, _ Settings) (string, error) {
	cpu, runError := crt.Run(splitLines(inputs[0]))
	if runError != nil {
		return "", runError
	}
	if partTwo {
		return cpu.RenderScreen(), nil
	}
	return strconv.Itoa(cpu.SignalStrengthSum()), nil
}
