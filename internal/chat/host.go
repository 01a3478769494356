package chat

// Host is the environment that owns sessions and text output.
// Both calls are fire-and-forget; delivery failures are the host's concern.
type Host interface {
	// Print sends a line visible only to target.
	Print(target *Session, text string)
	// Say broadcasts a chat line to every participant, tagged with origin.
	Say(origin *Session, text string)
}
