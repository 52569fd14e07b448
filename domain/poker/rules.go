package poker

import "fmt"

// RuleSet selects how hands are classified and ranked.
//
// Faithful keeps the historical behaviour of this evaluator:
//   - a straight only checks the gaps between its four highest cards
//   - an ace is always high, so A-2-3-4-5 is not a straight
//   - Straight Flush has the same strength as Royal Flush
//   - a full house breaks ties on all five cards sorted by rank
//
// Standard applies regular poker ranking instead.
type RuleSet uint8

const (
	Faithful RuleSet = iota
	Standard
)

// ParseRuleSet maps "faithful" or "standard" to a RuleSet.
func ParseRuleSet(s string) (RuleSet, error) {
	switch s {
	case "faithful":
		return Faithful, nil
	case "standard":
		return Standard, nil
	default:
		return Faithful, fmt.Errorf("unknown rule set %q", s)
	}
}

func (r RuleSet) String() string {
	switch r {
	case Faithful:
		return "faithful"
	case Standard:
		return "standard"
	default:
		return fmt.Sprintf("RuleSet(%d)", uint8(r))
	}
}
