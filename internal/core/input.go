package core

import "strings"

// movementKeys lists the key identifiers bound to each direction.
// Identifiers follow Bubble Tea's KeyMsg.String() naming.
var movementKeys = map[Direction][]string{
	DirLeft:  {"left", "a"},
	DirRight: {"right", "d"},
	DirUp:    {"up", "w"},
	DirDown:  {"down", "s"},
}

// DirectionForKey maps a key identifier to a movement direction.
// Letter aliases are case-insensitive. Returns false for non-movement keys.
func DirectionForKey(key string) (Direction, bool) {
	k := strings.ToLower(key)
	for dir, keys := range movementKeys {
		for _, candidate := range keys {
			if k == candidate {
				return dir, true
			}
		}
	}
	return DirNone, false
}

// MovementKeys returns the key identifiers bound to dir.
func MovementKeys(dir Direction) []string {
	keys := movementKeys[dir]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
