package poker

import (
	"cmp"
	"fmt"
)

// Classify returns the strongest category h belongs to, together with its
// strength and tie-break ordering.
func Classify(h Hand, rules RuleSet) Result {
	for _, cl := range pipeline {
		if order, ok := cl.match(h, rules); ok {
			return Result{
				Category: cl.category,
				Strength: cl.category.Strength(rules),
				Order:    order,
			}
		}
	}
	// unreachable, high card matches every hand
	panic(fmt.Sprintf("no category matched hand %s", h))
}

// Compare orders two results by strength, then by the ranks of their
// tie-break orderings position by position. It returns -1 if a is weaker
// than b, 1 if it is stronger and 0 on a draw. Suits never break ties.
func Compare(a, b Result) int {
	if c := cmp.Compare(a.Strength, b.Strength); c != 0 {
		return c
	}
	for i := range a.Order {
		if c := cmp.Compare(a.Order[i].rank, b.Order[i].rank); c != 0 {
			return c
		}
	}
	return 0
}

// Evaluate classifies both hands and compares them.
func Evaluate(left, right Hand, rules RuleSet) Showdown {
	s := Showdown{
		Left:  Classify(left, rules),
		Right: Classify(right, rules),
	}
	s.Outcome = outcomeOf(Compare(s.Left, s.Right))
	return s
}

// Decide reports which of two hands wins.
func Decide(left, right Hand, rules RuleSet) Outcome {
	return Evaluate(left, right, rules).Outcome
}

func outcomeOf(c int) Outcome {
	switch {
	case c > 0:
		return LeftWins
	case c < 0:
		return RightWins
	default:
		return Draw
	}
}
