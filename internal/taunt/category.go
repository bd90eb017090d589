package taunt

// Category is one of the fixed commentary classes tied to a game-state event.
// The set is closed; section headers in the corpus file that name anything
// else fold into CategoryGeneral.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryCapture
	CategoryUserBlunder
	CategoryEngineBlunder
	CategoryLosing
	CategoryWinning
	CategoryCrushing
	CategoryAdvantage
	CategoryBalance
	CategoryDisadvantage
	CategoryEscape
	CategoryGaining

	categoryCount
)

// categoryNames maps the corpus-file section vocabulary to categories.
// Matching is case-sensitive; the file format expects uppercase names.
var categoryNames = map[string]Category{
	"GENERAL":        CategoryGeneral,
	"CAPTURE":        CategoryCapture,
	"USER_BLUNDER":   CategoryUserBlunder,
	"ENGINE_BLUNDER": CategoryEngineBlunder,
	"LOSING":         CategoryLosing,
	"WINNING":        CategoryWinning,
	"CRUSHING":       CategoryCrushing,
	"ADVANTAGE":      CategoryAdvantage,
	"BALANCE":        CategoryBalance,
	"DISADVANTAGE":   CategoryDisadvantage,
	"ESCAPE":         CategoryEscape,
	"GAINING":        CategoryGaining,
}

// CategoryFromName resolves a corpus section name to a Category. Unknown
// names resolve to CategoryGeneral and report ok=false so callers that care
// (the corpus linter) can flag them.
func CategoryFromName(name string) (Category, bool) {
	if c, ok := categoryNames[name]; ok {
		return c, true
	}
	return CategoryGeneral, false
}

// String returns the canonical section name for the category.
func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "GENERAL"
	case CategoryCapture:
		return "CAPTURE"
	case CategoryUserBlunder:
		return "USER_BLUNDER"
	case CategoryEngineBlunder:
		return "ENGINE_BLUNDER"
	case CategoryLosing:
		return "LOSING"
	case CategoryWinning:
		return "WINNING"
	case CategoryCrushing:
		return "CRUSHING"
	case CategoryAdvantage:
		return "ADVANTAGE"
	case CategoryBalance:
		return "BALANCE"
	case CategoryDisadvantage:
		return "DISADVANTAGE"
	case CategoryEscape:
		return "ESCAPE"
	case CategoryGaining:
		return "GAINING"
	}
	return "GENERAL"
}

// Categories returns all commentary categories in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// IsLosingEvent reports whether the event signals the speaker is in a clearly
// worse state. Losing-type events pass through the speak-while-losing
// dampener in the gate.
func IsLosingEvent(c Category) bool {
	return c == CategoryDisadvantage || c == CategoryLosing
}

// Tag is an optional descriptor on a corpus entry. Tags form a bitmask so a
// section header may carry several at once, e.g. [WINNING;BLUNT;INFORMAL].
type Tag uint8

const (
	// TagBlunt marks lines that are openly insulting. Excluded at low
	// rudeness settings.
	TagBlunt Tag = 1 << iota
	// TagCourteous marks lines that are pointedly polite. Excluded at high
	// rudeness settings.
	TagCourteous
	// TagSelfDeprecating marks lines aimed at the speaker itself.
	TagSelfDeprecating
	// TagInformal marks street / hustler flavor lines.
	TagInformal
)

var tagNames = map[string]Tag{
	"BLUNT":     TagBlunt,
	"COURTEOUS": TagCourteous,
	"SELFDEP":   TagSelfDeprecating,
	"INFORMAL":  TagInformal,
}

// TagFromName resolves a corpus tag name to its bit. Unknown names resolve
// to zero (no bits), so they contribute nothing to a section's tag set.
func TagFromName(name string) (Tag, bool) {
	if t, ok := tagNames[name]; ok {
		return t, true
	}
	return 0, false
}

// Has reports whether all bits of other are set on t.
func (t Tag) Has(other Tag) bool {
	return t&other == other
}
