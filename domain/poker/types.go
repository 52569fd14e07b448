package poker

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

var (
	ErrHandSize = errors.New("a hand holds exactly 5 cards")
	ErrDealSize = errors.New("a deal holds exactly 10 cards")
)

// Hand is five cards in the order they were dealt.
type Hand [HandSize]Card

// ParseHand parses exactly five card tokens into a Hand.
func ParseHand(tokens []string) (Hand, error) {
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w, got %d", ErrHandSize, len(tokens))
	}
	var h Hand
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i, err)
		}
		h[i] = c
	}
	return h, nil
}

// ParseDeal splits a line of ten whitespace separated tokens into two hands:
// the first five cards go left, the next five go right.
func ParseDeal(line string) (left Hand, right Hand, err error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2*HandSize {
		return Hand{}, Hand{}, fmt.Errorf("%w, got %d", ErrDealSize, len(tokens))
	}
	left, err = ParseHand(tokens[:HandSize])
	if err != nil {
		return Hand{}, Hand{}, fmt.Errorf("left hand: %w", err)
	}
	right, err = ParseHand(tokens[HandSize:])
	if err != nil {
		return Hand{}, Hand{}, fmt.Errorf("right hand: %w", err)
	}
	return left, right, nil
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Category is a poker hand class.
type Category uint8

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Strength returns the value used to order categories under the given rules.
// Faithful rules give Straight Flush the same strength as Royal Flush.
func (c Category) Strength(rules RuleSet) int {
	if c == StraightFlush && rules == Faithful {
		return int(RoyalFlush)
	}
	return int(c)
}

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Result is the classification of one hand.
type Result struct {
	Category Category
	Strength int
	// Order is the hand rearranged for tie-breaking within equal strength.
	Order [HandSize]Card
}

// Outcome of a two-hand showdown.
type Outcome int

const (
	Draw Outcome = iota
	LeftWins
	RightWins
)

func (o Outcome) String() string {
	switch o {
	case LeftWins:
		return "left hand wins"
	case RightWins:
		return "right hand wins"
	default:
		return "draw"
	}
}

// Showdown holds both classifications and the resulting outcome.
type Showdown struct {
	Left    Result
	Right   Result
	Outcome Outcome
}
