package game

// Base stats shared by every new character before class modifiers.
const (
	BaseHP      = 100
	BaseStamina = 100
	BaseAttack  = 10
)

// StatModifiers are stat adjustments applied on top of base stats.
type StatModifiers struct {
	HP      int
	Stamina int
	Attack  int
}

// Class defines a playable character class: its name, flavour text,
// and the stat modifiers that differentiate play styles.
type Class struct {
	Name        string
	Description string
	Modifiers   StatModifiers
}

// Stats is a character's resolved stat block.
type Stats struct {
	HP      int
	Stamina int
	Attack  int
}

// Apply resolves base stats through the class modifiers.
func (c Class) Apply() Stats {
	return Stats{
		HP:      BaseHP + c.Modifiers.HP,
		Stamina: BaseStamina + c.Modifiers.Stamina,
		Attack:  BaseAttack + c.Modifiers.Attack,
	}
}

// DefaultClasses returns the playable classes in presentation order.
func DefaultClasses() []Class {
	return []Class{
		{
			Name:        "Warrior",
			Description: "A battle-hardened fighter who relies on strength and endurance.",
			Modifiers:   StatModifiers{HP: 20, Stamina: 10, Attack: 5},
		},
		{
			Name:        "Mage",
			Description: "A wielder of arcane magic, fragile but devastatingly powerful.",
			Modifiers:   StatModifiers{HP: -10, Stamina: 5, Attack: -2},
		},
		{
			Name:        "Rogue",
			Description: "A cunning and agile fighter who strikes from the shadows.",
			Modifiers:   StatModifiers{HP: -5, Stamina: 20, Attack: 3},
		},
		{
			Name:        "Cleric",
			Description: "A divine servant who heals allies and smites the unholy.",
			Modifiers:   StatModifiers{HP: 10, Stamina: 5, Attack: 0},
		},
	}
}
