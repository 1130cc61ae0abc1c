// Package car implements the canonical Car message (§8 scenario S1): a
// concrete flyweight-based message type exercising every construct the
// runtime supports — a nested composite, an enum, a char-backed enum, a
// bitset, fixed-length arrays, constant fields, a plain group and a
// group-of-groups, and variable-data fields — alongside a hand-built IR
// token list describing the identical layout, so the same bytes can be
// decoded either through the generated-style flyweight or through the
// on-the-fly decoder and compared (P10).
package car

// BooleanType is the `available` field's enum encoding: a single
// unsigned byte.
type BooleanType uint8

const (
	BooleanTypeF BooleanType = 0
	BooleanTypeT BooleanType = 1
)

func (b BooleanType) String() string {
	switch b {
	case BooleanTypeT:
		return "T"
	case BooleanTypeF:
		return "F"
	default:
		return "NULL_VAL"
	}
}

// Model is the `code` field's enum encoding: a single character.
type Model byte

const (
	ModelA Model = 'A'
	ModelB Model = 'B'
	ModelC Model = 'C'
)

func (m Model) String() string {
	switch m {
	case ModelA, ModelB, ModelC:
		return string(rune(m))
	default:
		return "NULL_VAL"
	}
}

// BoostType is the Booster composite's enum encoding: a single character.
type BoostType byte

const (
	BoostTypeNitrous      BoostType = 'N'
	BoostTypeSupercharger BoostType = 'S'
	BoostTypeKers         BoostType = 'K'
)

func (b BoostType) String() string {
	switch b {
	case BoostTypeNitrous:
		return "NITROUS"
	case BoostTypeSupercharger:
		return "SUPERCHARGER"
	case BoostTypeKers:
		return "KERS"
	default:
		return "NULL_VAL"
	}
}

// OptionalExtras is the `extras` field's bitset encoding: a single byte of
// independent choices.
type OptionalExtras uint8

const (
	ExtraCruiseControl OptionalExtras = 1 << 0
	ExtraSportsPack    OptionalExtras = 1 << 1
	ExtraSunRoof       OptionalExtras = 1 << 2
)

// Has reports whether choice is set in extras.
func (e OptionalExtras) Has(choice OptionalExtras) bool {
	return e&choice != 0
}
