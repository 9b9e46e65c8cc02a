package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thesuzerain/advent-of-code/internal/config"
	"github.com/thesuzerain/advent-of-code/internal/utils"
)

// writeConfigFile drops a yaml configuration file and returns its path.
func writeConfigFile(testingHandle *testing.T, directory, name, contents string) string {
	testingHandle.Helper()
	path := filepath.Join(directory, name)
	if writeError := os.WriteFile(path, []byte(contents), 0o644); writeError != nil {
		testingHandle.Fatalf("write configuration fixture %s: %v", path, writeError)
	}
	return path
}

// isolateHome points the user home at an empty directory so the global
// configuration file of the host machine cannot leak into a test.
func isolateHome(testingHandle *testing.T) string {
	testingHandle.Helper()
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	return homeDirectory
}

func TestResolveAppliesDefaults(testingHandle *testing.T) {
	resolved := config.ApplicationConfiguration{}.Resolve()

	if resolved.InputDirectory != "input" {
		testingHandle.Fatalf("default input directory = %q, want input", resolved.InputDirectory)
	}
	if resolved.Format != "raw" {
		testingHandle.Fatalf("default format = %q, want raw", resolved.Format)
	}
	if resolved.Clipboard {
		testingHandle.Fatalf("clipboard defaults to on, want off")
	}
	if resolved.PacketMarkerLength != 4 || resolved.MessageMarkerLength != 14 {
		testingHandle.Fatalf("marker defaults = %d/%d, want 4/14", resolved.PacketMarkerLength, resolved.MessageMarkerLength)
	}
	if resolved.SizeThreshold != 100000 || resolved.DiskCapacity != 70000000 || resolved.UpdateSpace != 30000000 {
		testingHandle.Fatalf("device defaults = %d/%d/%d, want 100000/70000000/30000000",
			resolved.SizeThreshold, resolved.DiskCapacity, resolved.UpdateSpace)
	}
	if resolved.ShortKnots != 2 || resolved.LongKnots != 10 {
		testingHandle.Fatalf("knot defaults = %d/%d, want 2/10", resolved.ShortKnots, resolved.LongKnots)
	}
}

func TestResolveKeepsExplicitValues(testingHandle *testing.T) {
	clipboard := true
	shortKnots := 3
	configuration := config.ApplicationConfiguration{
		InputDirectory: "puzzles",
		Format:         "json",
		Clipboard:      &clipboard,
	}
	configuration.Rope.ShortKnots = &shortKnots

	resolved := configuration.Resolve()
	if resolved.InputDirectory != "puzzles" || resolved.Format != "json" || !resolved.Clipboard {
		testingHandle.Fatalf("resolved = %+v, want explicit values preserved", resolved)
	}
	if resolved.ShortKnots != 3 {
		testingHandle.Fatalf("resolved short knots = %d, want 3", resolved.ShortKnots)
	}
	if resolved.LongKnots != 10 {
		testingHandle.Fatalf("resolved long knots = %d, want the default 10", resolved.LongKnots)
	}
}

func TestLoadMergesLocalOverGlobal(testingHandle *testing.T) {
	homeDirectory := isolateHome(testingHandle)
	globalDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
	if mkdirError := os.MkdirAll(globalDirectory, 0o755); mkdirError != nil {
		testingHandle.Fatalf("create global configuration directory: %v", mkdirError)
	}
	writeConfigFile(testingHandle, globalDirectory, utils.ConfigFileName,
		"input_directory: global-inputs\nformat: json\nclipboard: true\n")

	workingDirectory := testingHandle.TempDir()
	writeConfigFile(testingHandle, workingDirectory, utils.ConfigFileName,
		"input_directory: local-inputs\nrope:\n  short_knots: 5\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration: %v", loadError)
	}

	if configuration.InputDirectory != "local-inputs" {
		testingHandle.Fatalf("input directory = %q, want the local override", configuration.InputDirectory)
	}
	if configuration.Format != "json" {
		testingHandle.Fatalf("format = %q, want the global value json", configuration.Format)
	}
	if configuration.Clipboard == nil || !*configuration.Clipboard {
		testingHandle.Fatalf("clipboard = %v, want the global value true", configuration.Clipboard)
	}
	if configuration.Rope.ShortKnots == nil || *configuration.Rope.ShortKnots != 5 {
		testingHandle.Fatalf("short knots = %v, want the local value 5", configuration.Rope.ShortKnots)
	}
}

func TestLoadExplicitFilePath(testingHandle *testing.T) {
	isolateHome(testingHandle)
	workingDirectory := testingHandle.TempDir()
	explicitPath := writeConfigFile(testingHandle, workingDirectory, "custom.yaml",
		"device:\n  size_threshold: 555\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitPath,
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration: %v", loadError)
	}
	if configuration.Device.SizeThreshold == nil || *configuration.Device.SizeThreshold != 555 {
		testingHandle.Fatalf("size threshold = %v, want 555", configuration.Device.SizeThreshold)
	}
}

func TestLoadTreatsMissingFilesAsEmpty(testingHandle *testing.T) {
	isolateHome(testingHandle)
	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: testingHandle.TempDir(),
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration: %v", loadError)
	}
	if configuration.InputDirectory != "" || configuration.Clipboard != nil {
		testingHandle.Fatalf("configuration without files = %+v, want zero value", configuration)
	}
}

func TestMergeDoesNotShareOverridePointers(testingHandle *testing.T) {
	knots := 5
	override := config.ApplicationConfiguration{}
	override.Rope.ShortKnots = &knots

	merged := config.ApplicationConfiguration{}.Merge(override)
	knots = 9
	if *merged.Rope.ShortKnots != 5 {
		testingHandle.Fatalf("merged short knots = %d, want a clone holding 5", *merged.Rope.ShortKnots)
	}
}
