package tile

import "fmt"

// Type identifies the kind of a voxel. The declaration order is significant:
// vegetation variants are drawn from contiguous ranges of it.
type Type uint8

const (
	Sand Type = iota
	Dirt
	Grass
	Water
	Tree
	Leaves
	Mountain
	Plant1
	Plant2
	Plant3
	Stump
	Plant4
	Plant5
	Plant6
	Plant7
	Log
	Bush1
	Stone1
	Stone2
	Mushroom1
	Mushroom2
	Mushroom3
	Bush2
	Lilypad1
	Lilypad2
	Cactus
	DesertPlant1
	DesertPlant2

	typeCount
)

var typeNames = [typeCount]string{
	Sand:         "sand",
	Dirt:         "dirt",
	Grass:        "grass",
	Water:        "water",
	Tree:         "tree",
	Leaves:       "leaves",
	Mountain:     "mountain",
	Plant1:       "plant1",
	Plant2:       "plant2",
	Plant3:       "plant3",
	Stump:        "stump",
	Plant4:       "plant4",
	Plant5:       "plant5",
	Plant6:       "plant6",
	Plant7:       "plant7",
	Log:          "log",
	Bush1:        "bush1",
	Stone1:       "stone1",
	Stone2:       "stone2",
	Mushroom1:    "mushroom1",
	Mushroom2:    "mushroom2",
	Mushroom3:    "mushroom3",
	Bush2:        "bush2",
	Lilypad1:     "lilypad1",
	Lilypad2:     "lilypad2",
	Cactus:       "cactus",
	DesertPlant1: "desertplant1",
	DesertPlant2: "desertplant2",
}

// Range is an inclusive span of types that vegetation is drawn from.
type Range struct {
	First, Last Type
}

// Vegetation ranges placed on grass, water and sand surfaces respectively.
var (
	PlantVariants   = Range{First: Plant1, Last: Bush2}
	LilypadVariants = Range{First: Lilypad1, Last: Lilypad2}
	DesertVariants  = Range{First: Cactus, Last: DesertPlant2}
)

// Len returns how many types the range covers.
func (r Range) Len() int {
	return int(r.Last) - int(r.First) + 1
}

// Pick returns the i-th type of the range. i must be in [0, Len()).
func (r Range) Pick(i int) Type {
	return r.First + Type(i)
}

// Contains reports whether t lies in the range.
func (r Range) Contains(t Type) bool {
	return t >= r.First && t <= r.Last
}

// Count returns the number of defined types.
func Count() int {
	return int(typeCount)
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t < typeCount
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Parse returns the type with the given name.
func Parse(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile type %q", name)
}

// MarshalText encodes the type by name, so presets and logs stay readable.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tile type %d", uint8(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
