package config

import (
	"github.com/thesuzerain/advent-of-code/internal/solver"
	"github.com/thesuzerain/advent-of-code/internal/solver/rope"
	"github.com/thesuzerain/advent-of-code/internal/solver/signal"
	"github.com/thesuzerain/advent-of-code/internal/types"
)

// Simulated device constants defined by the puzzle statement.
const (
	DefaultSizeThreshold = 100000
	DefaultDiskCapacity  = 70000000
	DefaultUpdateSpace   = 30000000
)

// ResolvedConfiguration is a fully materialized configuration with every
// unset field replaced by its default.
type ResolvedConfiguration struct {
	InputDirectory string
	Format         string
	Clipboard      bool

	PacketMarkerLength  int
	MessageMarkerLength int

	SizeThreshold int
	DiskCapacity  int
	UpdateSpace   int

	ShortKnots int
	LongKnots  int
}

// Resolve fills unset fields with puzzle defaults.
func (configuration ApplicationConfiguration) Resolve() ResolvedConfiguration {
	resolved := ResolvedConfiguration{
		InputDirectory:      solver.DefaultInputDirectory,
		Format:              types.FormatRaw,
		PacketMarkerLength:  signal.DefaultPacketMarkerLength,
		MessageMarkerLength: signal.DefaultMessageMarkerLength,
		SizeThreshold:       DefaultSizeThreshold,
		DiskCapacity:        DefaultDiskCapacity,
		UpdateSpace:         DefaultUpdateSpace,
		ShortKnots:          rope.DefaultShortKnots,
		LongKnots:           rope.DefaultLongKnots,
	}
	if configuration.InputDirectory != "" {
		resolved.InputDirectory = configuration.InputDirectory
	}
	if configuration.Format != "" {
		resolved.Format = configuration.Format
	}
	if configuration.Clipboard != nil {
		resolved.Clipboard = *configuration.Clipboard
	}
	if configuration.Signal.PacketMarkerLength != nil {
		resolved.PacketMarkerLength = *configuration.Signal.PacketMarkerLength
	}
	if configuration.Signal.MessageMarkerLength != nil {
		resolved.MessageMarkerLength = *configuration.Signal.MessageMarkerLength
	}
	if configuration.Device.SizeThreshold != nil {
		resolved.SizeThreshold = *configuration.Device.SizeThreshold
	}
	if configuration.Device.DiskCapacity != nil {
		resolved.DiskCapacity = *configuration.Device.DiskCapacity
	}
	if configuration.Device.UpdateSpace != nil {
		resolved.UpdateSpace = *configuration.Device.UpdateSpace
	}
	if configuration.Rope.ShortKnots != nil {
		resolved.ShortKnots = *configuration.Rope.ShortKnots
	}
	if configuration.Rope.LongKnots != nil {
		resolved.LongKnots = *configuration.Rope.LongKnots
	}
	return resolved
}
