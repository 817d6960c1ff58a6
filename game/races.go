package game

// Size buckets a creature by physical scale.
type Size int

const (
	SizeMiniature Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeHuge
	SizeHumongous
)

var sizeNames = [...]string{
	"miniature",
	"small",
	"medium",
	"large",
	"huge",
	"humongous",
}

func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return "unknown"
	}
	return sizeNames[s]
}

// Race describes a playable race: its size and the stat adjustments it
// applies on top of a character's class stats.
type Race struct {
	Name        string
	Description string
	Size        Size
	Modifiers   StatModifiers
}

// Modify applies the race's stat adjustments.
func (r Race) Modify(s Stats) Stats {
	return Stats{
		HP:      s.HP + r.Modifiers.HP,
		Stamina: s.Stamina + r.Modifiers.Stamina,
		Attack:  s.Attack + r.Modifiers.Attack,
	}
}

// DefaultRaces returns every playable race.
func DefaultRaces() []Race {
	return []Race{
		{
			Name:        "Human",
			Description: "A versatile and adaptable race with no extreme strengths or weaknesses.",
			Size:        SizeMedium,
			Modifiers:   StatModifiers{HP: 0, Stamina: 0, Attack: 0},
		},
	}
}

// DefaultRace is the race new characters start with.
func DefaultRace() Race {
	return DefaultRaces()[0]
}
