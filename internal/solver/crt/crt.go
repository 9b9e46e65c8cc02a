// Package crt simulates the single-register video CPU and the CRT screen it
// drives.
package crt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	screenWidth  = 40
	screenHeight = 6
)

// signalSampleCycles are the cycles at which signal strength accumulates.
var signalSampleCycles = [...]int{20, 60, 100, 140, 180, 220}

var (
	addPattern  = regexp.MustCompile(`^addx\s(-?\d+)$`)
	noopPattern = regexp.MustCompile(`^noop$`)
)

// CPU executes noop/addx instructions, sampling signal strength and drawing
// sprite pixels as cycles elapse. The X register starts at 1.
type CPU struct {
	x              int
	cycles         int
	signalStrength int
	pixels         [screenWidth * screenHeight]bool
}

// New returns a CPU at cycle zero with the X register set to 1.
func New() *CPU {
	return &CPU{x: 1}
}

// X returns the current register value.
func (cpu *CPU) X() int {
	return cpu.x
}

// Cycles returns how many cycles have elapsed.
func (cpu *CPU) Cycles() int {
	return cpu.cycles
}

// SignalStrengthSum returns the accumulated cycle*X products sampled at the
// designated cycles.
func (cpu *CPU) SignalStrengthSum() int {
	return cpu.signalStrength
}

// Execute parses one instruction line and runs it. "noop" costs one cycle;
// "addx <n>" costs two cycles and then adds n to X.
func (cpu *CPU) Execute(line string) error {
	trimmed := strings.TrimSpace(line)

	if matches := addPattern.FindStringSubmatch(trimmed); matches != nil {
		operand, _ := strconv.Atoi(matches[1])
		cpu.tick()
		cpu.tick()
		cpu.x += operand
		return nil
	}
	if noopPattern.MatchString(trimmed) {
		cpu.tick()
		return nil
	}
	return fmt.Errorf("no instruction grammar matches line %q", trimmed)
}

// tick advances one cycle, drawing the pixel for the new cycle and sampling
// signal strength when the cycle is designated.
func (cpu *CPU) tick() {
	cpu.cycles++
	cpu.drawPixel()
	for _, sampleCycle := range signalSampleCycles {
		if cpu.cycles == sampleCycle {
			cpu.signalStrength += cpu.x * cpu.cycles
		}
	}
}

// drawPixel lights the pixel for the current cycle when the three-wide
// sprite centered on X overlaps the beam column.
func (cpu *CPU) drawPixel() {
	if cpu.cycles > len(cpu.pixels) {
		return
	}
	column := (cpu.cycles - 1) % screenWidth
	if column >= cpu.x-1 && column <= cpu.x+1 {
		cpu.pixels[cpu.cycles-1] = true
	}
}

// RenderScreen returns the drawn screen with lit pixels as '#' and dark
// pixels as '.', one row per line.
func (cpu *CPU) RenderScreen() string {
	var screen strings.Builder
	for rowIndex := 0; rowIndex < screenHeight; rowIndex++ {
		if rowIndex > 0 {
			screen.WriteByte('\n')
		}
		for columnIndex := 0; columnIndex < screenWidth; columnIndex++ {
			if cpu.pixels[rowIndex*screenWidth+columnIndex] {
				screen.WriteByte('#')
			} else {
				screen.WriteByte('.')
			}
		}
	}
	return screen.String()
}

// Run executes every instruction line on a fresh CPU and returns it.
func Run(lines []string) (*CPU, error) {
	cpu := New()
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if executeError := cpu.Execute(line); executeError != nil {
			return nil, executeError
		}
	}
	return cpu, nil
}
