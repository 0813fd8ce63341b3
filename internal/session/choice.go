package session

// Choice enumerates the fixed seed menu. The set is closed: every entry is
// bound to its key and pattern name at compile time, so the menu and the
// dispatch table cannot drift apart.
type Choice uint8

const (
	ChoiceBlock Choice = iota
	ChoiceBeehive
	ChoiceLoaf
	ChoiceBoat
	ChoiceTub
	ChoiceBlinker
	ChoiceToad
	ChoiceBeacon
	ChoiceGlider
	ChoiceSaved
	ChoiceRandom
)

// Choices lists the menu entries in display order.
func Choices() []Choice {
	return []Choice{
		ChoiceBlock, ChoiceBeehive, ChoiceLoaf, ChoiceBoat, ChoiceTub,
		ChoiceBlinker, ChoiceToad, ChoiceBeacon, ChoiceGlider,
		ChoiceSaved, ChoiceRandom,
	}
}

// Name returns the pattern name the choice loads. Random has no pattern
// lookup and reports a display label only.
func (ch Choice) Name() string {
	switch ch {
	case ChoiceBlock:
		return "Block"
	case ChoiceBeehive:
		return "Beehive"
	case ChoiceLoaf:
		return "Loaf"
	case ChoiceBoat:
		return "Boat"
	case ChoiceTub:
		return "Tub"
	case ChoiceBlinker:
		return "Blinker"
	case ChoiceToad:
		return "Toad"
	case ChoiceBeacon:
		return "Beacon"
	case ChoiceGlider:
		return "Glider"
	case ChoiceSaved:
		return "Saved"
	case ChoiceRandom:
		return "Random"
	}
	return ""
}

// Key returns the keyboard binding for the choice.
func (ch Choice) Key() rune {
	if ch == ChoiceRandom {
		return 'r'
	}
	return rune('0' + ch)
}

func choiceForKey(key rune) (Choice, bool) {
	if key >= '0' && key <= '9' {
		return Choice(key - '0'), true
	}
	if key == 'r' {
		return ChoiceRandom, true
	}
	return 0, false
}
