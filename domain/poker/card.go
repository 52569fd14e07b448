package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
)

// Suit identifies one of the four card suits.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Rank is the numeric value of a card, 2 through 14.
type Rank uint8

// Card rank constants for ten, face cards and ace
const (
	Two   Rank = 2
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14 // always high
)

// ErrInvalidCard is matched by every *ParseError.
var ErrInvalidCard = errors.New("invalid card")

// ParseError reports a card token that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidCard
}

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// ParseCard parses a two character token such as "KH", "th" or "A♠".
func ParseCard(token string) (Card, error) {
	token = strings.TrimSpace(token)
	if utf8.RuneCountInString(token) != 2 {
		return Card{}, &ParseError{Token: token, Reason: "must be 2 characters"}
	}
	r, size := utf8.DecodeRuneInString(token)
	s, _ := utf8.DecodeRuneInString(token[size:])

	rank, ok := parseRank(r)
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", r)}
	}
	suit, ok := parseSuit(s)
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit %q", s)}
	}
	return Card{suit: suit, rank: rank}, nil
}

func parseRank(r rune) (Rank, bool) {
	switch r {
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	}
	if r >= '2' && r <= '9' {
		return Rank(r - '0'), true
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 'C', 'c', '♣':
		return Club, true
	case 'D', 'd', '♦':
		return Diamond, true
	case 'H', 'h', '♥':
		return Heart, true
	case 'S', 's', '♠':
		return Spade, true
	}
	return 0, false
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank value of the Card (2-14).
func (c Card) Rank() Rank {
	return c.rank
}

// String returns the compact token form of the Card, e.g. "TD" or "AS".
// The result parses back to the same Card.
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Pretty returns a human-readable representation of the Card using coloured
// suit symbols (♣, ♦, ♥, ♠).
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r < Ten {
		return fmt.Sprintf("%d", r)
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	case Spade:
		return "S"
	default:
		return "?"
	}
}
