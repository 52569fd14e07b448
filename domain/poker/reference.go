package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// ReferenceDecide scores both hands with a standard 5-card evaluator and
// reports the winner. It follows regular poker ranking, so it agrees with
// the Standard rule set and can disagree with the Faithful one.
func ReferenceDecide(left, right Hand) (Outcome, error) {
	l, err := left.reference()
	if err != nil {
		return Draw, fmt.Errorf("left hand: %w", err)
	}
	r, err := right.reference()
	if err != nil {
		return Draw, fmt.Errorf("right hand: %w", err)
	}
	return outcomeOf(int(poker.Eval5(&l)) - int(poker.Eval5(&r))), nil
}

// DescribeHand returns a human description of h such as "pair of sevens".
func DescribeHand(h Hand) (string, error) {
	c, err := h.reference()
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

func (h Hand) reference() ([HandSize]poker.Card, error) {
	var out [HandSize]poker.Card
	for i, c := range h {
		card, err := c.reference()
		if err != nil {
			return [HandSize]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}

// The reference evaluator numbers ranks 1-13 with the ace as 1 and uses the
// same suit order as Card.
func (c Card) reference() (poker.Card, error) {
	rank := poker.Rank(c.rank)
	if c.rank == Ace {
		rank = 1
	}
	return poker.MakeCard(poker.Suit(c.suit), rank)
}
