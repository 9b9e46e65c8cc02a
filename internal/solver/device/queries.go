package device

import "fmt"

// Settings holds the simulated device constants supplied by configuration.
type Settings struct {
	SizeThreshold int
	DiskCapacity  int
	UpdateSpace   int
}

// SumSizesUnder returns the sum of every directory size in the subtree that
// is strictly below threshold. Nested directories are each counted
// independently, so a directory and its subdirectory can both contribute.
func (node *Node) SumSizesUnder(threshold int) int {
	sum := 0
	for _, size := range node.DirectorySizes() {
		if size < threshold {
			sum += size
		}
	}
	return sum
}

// SmallestSizeAtLeast returns the smallest directory size in the subtree that
// is strictly greater than minimum. The boolean result is false when no
// directory qualifies.
func (node *Node) SmallestSizeAtLeast(minimum int) (int, bool) {
	smallest := 0
	found := false
	for _, size := range node.DirectorySizes() {
		if size > minimum && (!found || size < smallest) {
			smallest = size
			found = true
		}
	}
	return smallest, found
}

// Part1 replays the session and sums every directory size under the
// configured threshold.
func Part1(session string, settings Settings) (int, error) {
	root, replayError := Replay(session)
	if replayError != nil {
		return 0, replayError
	}
	return root.SumSizesUnder(settings.SizeThreshold), nil
}

// Part2 replays the session and finds the smallest directory whose deletion
// frees enough space for the update.
func Part2(session string, settings Settings) (int, error) {
	root, replayError := Replay(session)
	if replayError != nil {
		return 0, replayError
	}
	freeSpace := settings.DiskCapacity - root.TotalSize()
	minimumDeletionSize := settings.UpdateSpace - freeSpace
	size, found := root.SmallestSizeAtLeast(minimumDeletionSize)
	if !found {
		return 0, fmt.Errorf("no directory larger than %d exists", minimumDeletionSize)
	}
	return size, nil
}
