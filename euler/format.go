package euler

import (
	"fmt"
	"strings"
)

// noTrailMarker is the literal rendered for an empty trail.
const noTrailMarker = "none"

// FormatTrail renders a trail as a space-separated vertex sequence, or the
// literal "none" when the trail is empty.
//
// Complexity: O(len(trail)).
func FormatTrail[T any](trail []T) string {
	if len(trail) == 0 {
		return noTrailMarker
	}

	parts := make([]string, len(trail))
	for i, v := range trail {
		parts[i] = fmt.Sprintf("%v", v)
	}

	return strings.Join(parts, " ")
}
