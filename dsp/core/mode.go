package core

// Mode selects how a stateful processor treats its internal state across
// Apply calls.
type Mode int

const (
	// PostProcessing resets internal state before every call. Each call is
	// independent and the whole signal is assumed to be available.
	PostProcessing Mode = iota

	// RealTime preserves internal state across calls so that a signal split
	// into chunks produces the same output as processing it in one call.
	RealTime
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case PostProcessing:
		return "post-processing"
	case RealTime:
		return "real-time"
	default:
		return "unknown"
	}
}
