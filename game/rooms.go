package game

import (
	"fmt"
	"sort"
	"strings"
)

// Direction identifies one of the eight compass exits a room may have.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	North:     "north",
	NorthEast: "north east",
	East:      "east",
	SouthEast: "south east",
	South:     "south",
	SouthWest: "south west",
	West:      "west",
	NorthWest: "north west",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the reverse compass direction.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Description holds the two levels of detail a room can be shown at.
type Description struct {
	Short string
	Long  string
}

// Room is a node in the world graph.  Exits are bidirectional and
// wired once with Connect.  Rooms are not safe for concurrent use on
// their own; the World's mutex guards all access after startup.
type Room struct {
	Name  string
	Desc  Description
	exits map[Direction]*Room
	items []string
}

// NewRoom creates an unconnected room.
func NewRoom(name string, desc Description) *Room {
	return &Room{
		Name:  name,
		Desc:  desc,
		exits: make(map[Direction]*Room),
	}
}

// Connect wires a bidirectional exit: r --d--> other and
// other --opposite--> r.  Both slots must be free.
func (r *Room) Connect(other *Room, d Direction) error {
	opp := d.Opposite()
	if occupied, ok := r.exits[d]; ok {
		return fmt.Errorf("%s: %s exit already leads to %s", r.Name, d, occupied.Name)
	}
	if occupied, ok := other.exits[opp]; ok {
		return fmt.Errorf("%s: %s exit already leads to %s", other.Name, opp, occupied.Name)
	}
	r.exits[d] = other
	other.exits[opp] = r
	return nil
}

// Exit returns the room behind direction d, or nil.
func (r *Room) Exit(d Direction) *Room {
	return r.exits[d]
}

// Exits returns the room's exits in compass order.
func (r *Room) Exits() []Exit {
	out := make([]Exit, 0, len(r.exits))
	for d, room := range r.exits {
		out = append(out, Exit{Direction: d, To: room})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Direction < out[j].Direction })
	return out
}

// Exit pairs a direction with the room it leads to.
type Exit struct {
	Direction Direction
	To        *Room
}

// AddItem places an item on the room floor.
func (r *Room) AddItem(name string) {
	r.items = append(r.items, name)
}

// Items returns a copy of the item names present in the room.
func (r *Room) Items() []string {
	return append([]string(nil), r.items...)
}

// takeItem removes the first item matching name (case-insensitive)
// and returns its canonical name.
func (r *Room) takeItem(name string) (string, bool) {
	for i, item := range r.items {
		if strings.EqualFold(item, name) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item, true
		}
	}
	return "", false
}

// ── Demo area ────────────────────────────────────────────────────────

// DemoArea builds the starting zone and returns its entry room.
//
// Layout:
//
//	           Town Square
//	                |
//	Empty Room -- Intro Room -- Stone Room
//	     |                          |
//	     +--------------------------+
func DemoArea() *Room {
	intro := NewRoom("Intro Room", Description{
		Short: "Small intro room.",
		Long:  "An intro room with a sword on the ground. A doorway leads east.",
	})
	stone := NewRoom("Stone Room", Description{
		Short: "A second room.",
		Long:  "An empty stone room. The exit is west.",
	})
	empty := NewRoom("Empty Room", Description{
		Short: "Empty room.",
		Long:  "An empty room that has two doors.",
	})
	square := NewRoom("Town Square", Description{
		Short: "Wide town square.",
		Long:  "A large town square filled with people.",
	})

	mustConnect(intro, stone, East)
	mustConnect(intro, square, North)
	mustConnect(intro, empty, NorthEast)
	mustConnect(empty, stone, South)

	intro.AddItem("Short Sword")
	return intro
}

func mustConnect(a, b *Room, d Direction) {
	if err := a.Connect(b, d); err != nil {
		panic("demo area wiring: " + err.Error())
	}
}
