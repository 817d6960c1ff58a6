// Package game implements the world simulation behind the session
// layer: the room graph, character classes, player presence, and the
// command set players type during gameplay.
//
// A single *World is shared by every session.  All exported methods
// are safe for concurrent use; one mutex guards the whole world, which
// is plenty at this scale.
package game

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gomud/internal/metrics"
	"gomud/internal/store"
	"gomud/util"
)

// player tracks one active character in the world.
type player struct {
	sessionID string
	name      string
	class     Class
	race      Race
	stats     Stats
	room      *Room
	inventory []string
	notify    func(line string)
}

// notice is one broadcast line captured while the world lock is held
// and delivered after it is released.
type notice struct {
	notify func(line string)
	line   string
}

// World owns the canonical room graph and all player presence.  It is
// created once at server startup and handed to every session.
type World struct {
	mu      sync.Mutex
	log     *util.Logger
	store   *store.Store
	metrics *metrics.Collector
	start   *Room
	classes []Class
	players map[string]*player // session id -> player
	pending []notice           // broadcasts queued under mu, flushed by unlockAndNotify
}

// NewWorld builds a world rooted at start.  Both st and m may be nil.
func NewWorld(start *Room, log *util.Logger, st *store.Store, m *metrics.Collector) *World {
	return &World{
		log:     log,
		store:   st,
		metrics: m,
		start:   start,
		classes: DefaultClasses(),
		players: make(map[string]*player),
	}
}

// ClassNames returns the playable class names in presentation order.
func (w *World) ClassNames() []string {
	names := make([]string, len(w.classes))
	for i, c := range w.classes {
		names[i] = c.Name
	}
	return names
}

// classByName resolves a class name case-insensitively.
func (w *World) classByName(name string) (Class, bool) {
	for _, c := range w.classes {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Class{}, false
}

// ── Presence ─────────────────────────────────────────────────────────

// Join registers a player entering the world and returns the text the
// session should show on arrival.  notify delivers room broadcasts to
// the session asynchronously.  Stats for a returning character of the
// same name and class are restored from the store.
func (w *World) Join(sessionID, name, class string, notify func(line string)) (string, error) {
	c, ok := w.classByName(class)
	if !ok {
		return "", fmt.Errorf("unknown class %q", class)
	}

	r := DefaultRace()

	w.mu.Lock()
	defer w.unlockAndNotify()

	for _, p := range w.players {
		if strings.EqualFold(p.name, name) {
			return "", fmt.Errorf("%s is already in the world", p.name)
		}
	}

	p := &player{
		sessionID: sessionID,
		name:      name,
		class:     c,
		race:      r,
		stats:     r.Modify(c.Apply()),
		room:      w.start,
		notify:    notify,
	}
	if prev, err := w.store.LoadCharacter(context.Background(), name); err != nil {
		w.log.Warn("load character %s: %v", name, err)
	} else if prev != nil && strings.EqualFold(prev.Class, c.Name) {
		p.stats = Stats{HP: prev.HP, Stamina: prev.Stamina, Attack: prev.Attack}
	}
	w.players[sessionID] = p

	if err := w.store.SaveCharacter(context.Background(), store.Character{
		Name: p.name, Class: p.class.Name,
		HP: p.stats.HP, Stamina: p.stats.Stamina, Attack: p.stats.Attack,
	}); err != nil {
		w.log.Warn("save character %s: %v", p.name, err)
	}

	w.metrics.PlayerJoined()
	w.log.Info("%s the %s entered the world", p.name, p.class.Name)
	w.broadcast(p.room, fmt.Sprintf("%s has entered the world.", p.name), sessionID)

	var b strings.Builder
	fmt.Fprintf(&b, "Welcome, %s the %s!\n\n", p.name, p.class.Name)
	b.WriteString(w.lookAt(p))
	return b.String(), nil
}

// Leave removes a player from the world and persists their stats.
// Unknown session ids are ignored, so Leave is safe to call twice.
func (w *World) Leave(sessionID string) {
	w.mu.Lock()
	defer w.unlockAndNotify()

	p, ok := w.players[sessionID]
	if !ok {
		return
	}
	delete(w.players, sessionID)

	if err := w.store.SaveCharacter(context.Background(), store.Character{
		Name: p.name, Class: p.class.Name,
		HP: p.stats.HP, Stamina: p.stats.Stamina, Attack: p.stats.Attack,
	}); err != nil {
		w.log.Warn("save character %s: %v", p.name, err)
	}

	w.log.Info("%s left the world", p.name)
	w.broadcast(p.room, fmt.Sprintf("%s has left the world.", p.name), sessionID)
}

// PlayerCount returns the number of players currently in the world.
func (w *World) PlayerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.players)
}

// broadcast queues a line for every player in room except exclude.
// Callers must hold w.mu; delivery happens in unlockAndNotify once the
// lock is released.
func (w *World) broadcast(room *Room, line, exclude string) {
	for id, p := range w.players {
		if p.room == room && id != exclude {
			w.pending = append(w.pending, notice{p.notify, line})
		}
	}
}

// unlockAndNotify releases the world lock, then delivers every queued
// broadcast.  Recipients are notified outside the lock so a slow sink
// stalls only its own delivery, never the world.
func (w *World) unlockAndNotify() {
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()
	for _, n := range pending {
		n.notify(n.line)
	}
}

// playersIn lists the names of players in room except exclude, sorted.
// Callers must hold w.mu.
func (w *World) playersIn(room *Room, exclude string) []string {
	var names []string
	for id, p := range w.players {
		if p.room == room && id != exclude {
			names = append(names, p.name)
		}
	}
	sort.Strings(names)
	return names
}

// ── Completion ───────────────────────────────────────────────────────

// CompleteCommand returns full-line completion candidates for a
// partially typed command.  Bare prefixes complete against command
// verbs; "go", "get" and "drop" additionally complete their argument.
func (w *World) CompleteCommand(sessionID, prefix string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	verb, arg, hasArg := strings.Cut(prefix, " ")
	if !hasArg {
		var out []string
		for _, v := range commandVerbs {
			if strings.HasPrefix(v, strings.ToLower(verb)) {
				out = append(out, v)
			}
		}
		return out
	}

	p, ok := w.players[sessionID]
	if !ok {
		return nil
	}

	var targets []string
	switch strings.ToLower(verb) {
	case "go":
		for _, e := range p.room.Exits() {
			targets = append(targets, e.To.Name)
		}
	case "get":
		targets = p.room.Items()
	case "drop":
		targets = append(targets, p.inventory...)
	default:
		return nil
	}

	var out []string
	for _, t := range targets {
		if strings.HasPrefix(strings.ToLower(t), strings.ToLower(arg)) {
			out = append(out, verb+" "+t)
		}
	}
	sort.Strings(out)
	return out
}
