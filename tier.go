package immediate

import "strings"

// Tier identifies which of the mutually exclusive trigger mechanisms a
// scheduler bound at construction. Exactly one tier is selected per
// scheduler and the selection never changes afterwards.
type Tier uint8

const (
	// TierUnknown is the zero value; it is never selected.
	TierUnknown Tier = iota
	// TierNative defers entirely to a host-provided schedule/cancel pair.
	TierNative
	// TierPipe arms a fresh two-endpoint message pipe per scheduled task.
	TierPipe
	// TierBroadcast arms tasks by publishing prefixed handles on a shared
	// broadcast medium watched by a single persistent listener.
	TierBroadcast
	// TierTimer arms a zero-delay timer per scheduled task. Always available.
	TierTimer
)

// String returns the tier name used in logs and the IMMEDIATE_TIER override.
func (t Tier) String() string {
	switch t {
	case TierNative:
		return "native"
	case TierPipe:
		return "pipe"
	case TierBroadcast:
		return "broadcast"
	case TierTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// parseTier maps an override name to a tier. Unknown or empty names map to
// TierUnknown, which means "no override".
func parseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return TierNative
	case "pipe":
		return TierPipe
	case "broadcast":
		return TierBroadcast
	case "timer":
		return TierTimer
	default:
		return TierUnknown
	}
}
