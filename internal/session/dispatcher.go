package session

import "context"

// Dispatcher is the game-logic collaborator a session drives.  The
// session layer knows nothing about rooms or commands; it captures an
// identity, then forwards submitted lines here verbatim.
//
// Implementations must be safe for concurrent use across sessions.
type Dispatcher interface {
	// ClassNames enumerates the playable classes, in the order they
	// should be offered during identity capture.
	ClassNames() []string

	// Join registers a confirmed character and returns the text to
	// show on arrival.  notify delivers asynchronous output (room
	// broadcasts) to the session from other goroutines.
	Join(sessionID, name, class string, notify func(line string)) (string, error)

	// Dispatch executes one submitted gameplay line and returns the
	// text to show.  Returning the quit sentinel ends the session;
	// any other error is shown to the player and play continues.
	Dispatch(ctx context.Context, sessionID, line string) (string, error)

	// CompleteCommand returns full-line candidates for a partially
	// typed command, stably ordered.
	CompleteCommand(sessionID, prefix string) []string

	// Leave withdraws a player.  Unknown ids must be tolerated:
	// sessions that never completed identity capture call it too.
	Leave(sessionID string)
}
