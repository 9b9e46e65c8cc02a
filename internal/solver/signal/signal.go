// Package signal locates start markers in a datastream.
package signal

import "fmt"

const (
	// DefaultPacketMarkerLength is the window size for a start-of-packet marker.
	DefaultPacketMarkerLength = 4
	// DefaultMessageMarkerLength is the window size for a start-of-message marker.
	DefaultMessageMarkerLength = 14
)

// StartMarker returns the one-based position of the first character after
// which the preceding markerLength characters are all distinct. It fails
// when the stream contains no such window.
func StartMarker(stream string, markerLength int) (int, error) {
	if markerLength < 1 {
		return 0, fmt.Errorf("marker length %d must be positive", markerLength)
	}
	characters := []rune(stream)
	for windowEnd := markerLength; windowEnd <= len(characters); windowEnd++ {
		if allDistinct(characters[windowEnd-markerLength : windowEnd]) {
			return windowEnd, nil
		}
	}
	return 0, fmt.Errorf("stream contains no window of %d distinct characters", markerLength)
}

// allDistinct reports whether the window contains no repeated character.
func allDistinct(window []rune) bool {
	seen := make(map[rune]struct{}, len(window))
	for _, character := range window {
		if _, duplicate := seen[character]; duplicate {
			return false
		}
		seen[character] = struct{}{}
	}
	return true
}
