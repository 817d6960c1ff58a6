package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	errs "gomud/internal/errors"
)

// commandVerbs lists every gameplay command, sorted for completion.
var commandVerbs = []string{
	"drop",
	"get",
	"go",
	"help",
	"inv",
	"inventory",
	"look",
	"quit",
	"say",
	"stats",
	"who",
}

// Dispatch executes one submitted command line for a session and
// returns the text to show.  A quit command returns errs.ErrQuit; any
// other error is non-fatal and is rendered by the session.  Input that
// matches neither a command nor an adjacent room name yields an
// "Unknown command" line, not an error.
func (w *World) Dispatch(ctx context.Context, sessionID, line string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw := strings.TrimSpace(line)
	if raw == "" {
		return "", nil
	}
	w.metrics.LineDispatched()

	w.mu.Lock()
	defer w.unlockAndNotify()

	p, ok := w.players[sessionID]
	if !ok {
		return "", errs.WrapSession("dispatch", sessionID, fmt.Errorf("no player in world"))
	}

	verb, arg, _ := strings.Cut(raw, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "look":
		return w.lookAt(p), nil
	case "go":
		return w.cmdGo(p, arg)
	case "inventory", "inv":
		return w.cmdInventory(p), nil
	case "get":
		return w.cmdGet(p, arg), nil
	case "drop":
		return w.cmdDrop(p, arg), nil
	case "say":
		return w.cmdSay(p, arg), nil
	case "who":
		return w.cmdWho(), nil
	case "stats":
		return w.cmdStats(p), nil
	case "help":
		return w.cmdHelp(p), nil
	case "quit", "exit":
		return "Thanks for playing! Goodbye.", errs.ErrQuit
	default:
		// The original interface lets players type a bare room name
		// to move there.
		if out, moved := w.moveByName(p, raw); moved {
			return out, nil
		}
		return fmt.Sprintf("Unknown command: %s. Type help for commands.", raw), nil
	}
}

// ── Command handlers (callers hold w.mu) ─────────────────────────────

// lookAt renders the player's current room.
func (w *World) lookAt(p *player) string {
	var b strings.Builder
	b.WriteString(p.room.Name)
	b.WriteString("\n")
	if p.room.Desc.Long != "" {
		b.WriteString(p.room.Desc.Long)
	} else {
		b.WriteString(p.room.Desc.Short)
	}
	if items := p.room.Items(); len(items) > 0 {
		fmt.Fprintf(&b, "\nYou see: %s.", strings.Join(items, ", "))
	}
	if others := w.playersIn(p.room, p.sessionID); len(others) > 0 {
		fmt.Fprintf(&b, "\nAlso here: %s.", strings.Join(others, ", "))
	}
	return b.String()
}

func (w *World) cmdGo(p *player, arg string) (string, error) {
	if arg == "" {
		return "Go where? Type help to see the exits.", nil
	}
	if out, moved := w.moveByName(p, arg); moved {
		return out, nil
	}
	return fmt.Sprintf("You can't get to %q from here.", arg), nil
}

// moveByName moves the player through the exit whose room name or
// direction matches target, case-insensitively.
func (w *World) moveByName(p *player, target string) (string, bool) {
	for _, e := range p.room.Exits() {
		if strings.EqualFold(e.To.Name, target) || strings.EqualFold(e.Direction.String(), target) {
			old := p.room
			p.room = e.To
			w.broadcast(old, fmt.Sprintf("%s has left.", p.name), p.sessionID)
			w.broadcast(e.To, fmt.Sprintf("%s has arrived.", p.name), p.sessionID)
			return fmt.Sprintf("You move %s to %s.\n\n%s", e.Direction, e.To.Name, w.lookAt(p)), true
		}
	}
	return "", false
}

func (w *World) cmdInventory(p *player) string {
	if len(p.inventory) == 0 {
		return "You are carrying nothing."
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, item := range p.inventory {
		b.WriteString("\n  - " + item)
	}
	return b.String()
}

func (w *World) cmdGet(p *player, arg string) string {
	if arg == "" {
		return "Get what?"
	}
	item, ok := p.room.takeItem(arg)
	if !ok {
		return fmt.Sprintf("There is no %s here.", arg)
	}
	p.inventory = append(p.inventory, item)
	w.broadcast(p.room, fmt.Sprintf("%s picks up %s.", p.name, item), p.sessionID)
	return fmt.Sprintf("You pick up %s.", item)
}

func (w *World) cmdDrop(p *player, arg string) string {
	if arg == "" {
		return "Drop what?"
	}
	for i, item := range p.inventory {
		if strings.EqualFold(item, arg) {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			p.room.AddItem(item)
			w.broadcast(p.room, fmt.Sprintf("%s drops %s.", p.name, item), p.sessionID)
			return fmt.Sprintf("You drop %s.", item)
		}
	}
	return fmt.Sprintf("You are not carrying %s.", arg)
}

func (w *World) cmdSay(p *player, arg string) string {
	if arg == "" {
		return "Say what?"
	}
	w.broadcast(p.room, fmt.Sprintf("%s says, %q", p.name, arg), p.sessionID)
	return fmt.Sprintf("You say, %q", arg)
}

func (w *World) cmdWho() string {
	type entry struct{ name, class, room string }
	entries := make([]entry, 0, len(w.players))
	for _, p := range w.players {
		entries = append(entries, entry{p.name, p.class.Name, p.room.Name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	var b strings.Builder
	fmt.Fprintf(&b, "%d player(s) online:", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "\n  %s the %s (%s)", e.name, e.class, e.room)
	}
	return b.String()
}

func (w *World) cmdStats(p *player) string {
	return fmt.Sprintf("%s the %s\n  Race: %s (%s)\n  HP: %d\n  Stamina: %d\n  Attack: %d",
		p.name, p.class.Name, p.race.Name, p.race.Size, p.stats.HP, p.stats.Stamina, p.stats.Attack)
}

func (w *World) cmdHelp(p *player) string {
	var b strings.Builder
	b.WriteString("Commands: look, go <room>, get <item>, drop <item>, inventory (inv), say <msg>, who, stats, help, quit")
	exits := p.room.Exits()
	if len(exits) > 0 {
		parts := make([]string, len(exits))
		for i, e := range exits {
			parts[i] = fmt.Sprintf("%s (%s)", e.To.Name, e.Direction)
		}
		b.WriteString("\nGo to: " + strings.Join(parts, ", "))
	}
	return b.String()
}
