// Package session implements the per-connection state machine that
// drives a player from handshake through identity capture into the
// gameplay loop, plus the registry of live sessions.
//
// Concurrency model: each session is owned by a single transport
// reader goroutine that feeds HandleKey.  Only Push and Terminate may
// be called from other goroutines.  Push never writes to the transport
// itself: it enqueues into a bounded outbox drained by the session's
// writer goroutine, so a client that stops reading stalls only its own
// session, never its neighbours.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"gomud/internal/editor"
	errs "gomud/internal/errors"
	"gomud/internal/term"
	"gomud/util"
)

const (
	gameplayPrompt = "> "

	// outboxSize bounds how many undelivered broadcast lines a session
	// may accumulate before further lines are dropped.
	outboxSize = 32
)

// Session drives one connected player through the lifecycle phases.
type Session struct {
	ID     string
	User   string
	Remote string

	phase atomic.Int32

	// Reader-goroutine state.  Never touched by Push.
	editor editor.LineEditor
	step   identityStep
	name   string
	class  string
	prompt string

	game Dispatcher
	reg  *Registry
	log  *util.Logger

	outbox chan string   // broadcast lines awaiting delivery
	done   chan struct{} // closed by Terminate

	mu  sync.Mutex // guards out
	out io.WriteCloser
}

// New creates a session in the Connecting phase.
func New(id, user, remote string, out io.WriteCloser, game Dispatcher, reg *Registry, log *util.Logger) *Session {
	s := &Session{
		ID:     id,
		User:   user,
		Remote: remote,
		game:   game,
		reg:    reg,
		log:    log,
		outbox: make(chan string, outboxSize),
		done:   make(chan struct{}),
		out:    out,
	}
	s.phase.Store(int32(PhaseConnecting))
	go s.pushLoop()
	return s
}

// Phase returns the session's current lifecycle phase.
func (s *Session) Phase() Phase {
	return Phase(s.phase.Load())
}

// Begin moves the session out of Connecting, shows the banner and the
// first identity prompt.  Calling it twice is a no-op.
func (s *Session) Begin() {
	if !s.phase.CompareAndSwap(int32(PhaseConnecting), int32(PhaseIdentityCapture)) {
		return
	}
	s.step = stepName
	s.prompt = namePrompt
	s.mu.Lock()
	s.writeBlockLocked("Welcome to gomud!\nLet's create your character.")
	s.renderLocked()
	s.mu.Unlock()
	s.log.Verbose("identity capture started for %s@%s", s.User, s.Remote)
}

// HandleKey processes one decoded key event.  It returns
// ErrSessionTerminated once the session reaches its terminal phase;
// the caller must then stop feeding it.
func (s *Session) HandleKey(ctx context.Context, k term.Key) error {
	if s.Phase() == PhaseTerminated {
		return errs.ErrSessionTerminated
	}
	switch k.Kind {
	case term.KeyCtrlC, term.KeyCtrlD:
		s.Terminate("interrupt")
		return errs.ErrSessionTerminated
	case term.KeyRune:
		s.editor.Insert(k.Rune)
		s.render()
	case term.KeyBackspace:
		s.editor.Backspace()
		s.render()
	case term.KeyLeft:
		s.editor.MoveCursor(-1)
		s.render()
	case term.KeyRight:
		s.editor.MoveCursor(1)
		s.render()
	case term.KeyTab:
		s.completeTab()
	case term.KeyEnter:
		return s.submit(ctx)
	}
	return nil
}

// submit routes a completed line to the current phase's handler.
func (s *Session) submit(ctx context.Context) error {
	line := s.editor.Submit()
	s.mu.Lock()
	s.rawWriteLocked("\r\n")
	s.mu.Unlock()

	switch s.Phase() {
	case PhaseIdentityCapture:
		s.handleIdentityLine(line)
		return nil
	case PhaseGameplayLoop:
		return s.dispatchLine(ctx, line)
	default:
		return errs.ErrSessionTerminated
	}
}

func (s *Session) dispatchLine(ctx context.Context, line string) error {
	out, err := s.game.Dispatch(ctx, s.ID, line)
	if s.Phase() == PhaseTerminated {
		// The session went away mid-dispatch; discard the result.
		return errs.ErrSessionTerminated
	}

	quit := errors.Is(err, errs.ErrQuit)
	s.mu.Lock()
	if out != "" {
		s.writeBlockLocked(out)
	}
	if err != nil && !quit {
		s.log.Warn("dispatch: %v", err)
		s.writeBlockLocked("error: " + err.Error())
	}
	if !quit {
		s.renderLocked()
	}
	s.mu.Unlock()

	if quit {
		s.Terminate("quit")
		return errs.ErrSessionTerminated
	}
	return nil
}

// completeTab runs one Tab press.  Completion is available for class
// names during identity capture and for commands during gameplay.
func (s *Session) completeTab() {
	var c editor.Completer
	switch {
	case s.Phase() == PhaseGameplayLoop:
		c = editor.CompleterFunc(func(prefix string) []string {
			return s.game.CompleteCommand(s.ID, prefix)
		})
	case s.Phase() == PhaseIdentityCapture && s.step == stepClass:
		c = editor.CompleterFunc(s.completeClass)
	default:
		return
	}

	res := s.editor.RequestCompletion(c)
	s.mu.Lock()
	if len(res.Candidates) > 0 {
		s.writeBlockLocked(strings.Join(res.Candidates, "  "))
	}
	s.renderLocked()
	s.mu.Unlock()
}

// Push queues an asynchronous line (a room broadcast) for delivery to
// the session.  It never blocks: once the outbox is full further lines
// are dropped, so a client that has stopped reading cannot stall the
// sender.  Lines for terminated sessions are dropped.
func (s *Session) Push(line string) {
	if s.Phase() == PhaseTerminated {
		return
	}
	select {
	case s.outbox <- line:
	case <-s.done:
	default:
		s.log.Warn("outbox full, dropping line")
	}
}

// pushLoop drains the outbox on the session's writer goroutine,
// redrawing the prompt underneath each delivered line.
func (s *Session) pushLoop() {
	for {
		select {
		case line := <-s.outbox:
			if s.Phase() == PhaseTerminated {
				return
			}
			s.mu.Lock()
			s.writeBlockLocked(line)
			s.renderLocked()
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Terminate moves the session to its terminal phase exactly once:
// the registry entry is removed, the player withdrawn from the game,
// and the output closed so a blocked transport read unblocks.  Later
// calls are no-ops.
func (s *Session) Terminate(reason string) {
	prev := Phase(s.phase.Swap(int32(PhaseTerminated)))
	if prev == PhaseTerminated {
		return
	}
	s.log.Info("terminated after %s (%s)", prev, reason)
	s.reg.Remove(s.ID)
	s.game.Leave(s.ID)
	close(s.done)
	// Closed without the output mutex: a write stalled on a dead
	// client must be unblocked by the close, not wait behind it.
	s.out.Close()
}

// ── Rendering ────────────────────────────────────────────────────────

func (s *Session) render() {
	s.mu.Lock()
	s.renderLocked()
	s.mu.Unlock()
}

// renderLocked redraws the edit line: clear it, write the prompt and
// buffer, then move the terminal cursor left to the logical position.
func (s *Session) renderLocked() {
	var b strings.Builder
	b.WriteString("\r\x1b[K")
	b.WriteString(s.prompt)
	b.WriteString(s.editor.String())
	if back := s.editor.Len() - s.editor.Cursor(); back > 0 {
		fmt.Fprintf(&b, "\x1b[%dD", back)
	}
	s.rawWriteLocked(b.String())
}

// writeBlockLocked emits output above the edit line: the line is
// cleared first and LF endings become CRLF for the raw terminal.
func (s *Session) writeBlockLocked(block string) {
	var b strings.Builder
	b.WriteString("\r\x1b[K")
	b.WriteString(strings.ReplaceAll(strings.TrimRight(block, "\n"), "\n", "\r\n"))
	b.WriteString("\r\n")
	s.rawWriteLocked(b.String())
}

func (s *Session) rawWriteLocked(data string) {
	if _, err := io.WriteString(s.out, data); err != nil {
		s.log.Debug("write: %v", err)
	}
}
