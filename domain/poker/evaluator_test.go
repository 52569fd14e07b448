package poker

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		rules RuleSet
		want  Outcome
	}{
		{"full house beats three of a kind", "2C 2D 2H 5S 5C", "9C 9D 9H 3S 4C", Faithful, LeftWins},
		{"higher kicker wins", "8C 8D KH TS 3C", "8H 8S QD TC 3D", Faithful, LeftWins},
		{"lower kicker loses", "8H 8S QD TC 3D", "8C 8D KH TS 3C", Faithful, RightWins},
		{"suits do not break ties", "8C 8D KH TS 3C", "8H 8S KD TC 3D", Faithful, Draw},
		{"higher pair wins", "8C 8D 4H 4S KC", "8H 8S 5D 5C 2H", Faithful, RightWins},
		{"two pair kicker", "8C 8D 4H 4S KC", "8H 8S 4D 4C QH", Faithful, LeftWins},
		{"pair beats high card", "3H 6D KH 2H 4H", "2D 7H 7H KS JH", Faithful, RightWins},
		{"flush beats straight", "2C 7C 9C JC KC", "9C TD JH QS KC", Faithful, LeftWins},
		{"four of a kind kicker", "9C 9D 9H 9S 2C", "9C 9D 9H 9S 3C", Faithful, RightWins},
		{"faithful full house compares all cards", "2C 2D 2H 5S 5C", "3C 3D 3H 4S 4C", Faithful, LeftWins},
		{"standard full house compares triple first", "2C 2D 2H 5S 5C", "3C 3D 3H 4S 4C", Standard, RightWins},
		{"faithful ragged straight flush beats quads", "9H 8H 7H 6H 2H", "AC AD AH AS KC", Faithful, LeftWins},
		{"standard flush loses to quads", "9H 8H 7H 6H 2H", "AC AD AH AS KC", Standard, RightWins},
		{"wheel loses to six high straight", "AC 2D 3H 4S 5C", "2S 3C 4D 5H 6S", Standard, RightWins},
		{"royal flush beats straight flush", "TS JS QS KS AS", "9H TH JH QH KH", Faithful, LeftWins},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(mustHand(t, tt.left), mustHand(t, tt.right), tt.rules)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

// TestDecideSampleDeal runs the sample deal. Its left hand is all hearts, so
// it classifies as a Flush and beats the pair of sevens. With one suit
// changed the left hand is King high and loses to the pair.
func TestDecideSampleDeal(t *testing.T) {
	left, right, err := ParseDeal("3H 6H KH 2H 4H 2D 7H 7H KS JH")
	if err != nil {
		t.Fatal(err)
	}
	s := Evaluate(left, right, Faithful)
	if s.Left.Category != Flush {
		t.Errorf("expected left Flush, got %s", s.Left.Category)
	}
	if s.Right.Category != OnePair {
		t.Errorf("expected right One Pair, got %s", s.Right.Category)
	}
	if s.Outcome != LeftWins {
		t.Errorf("expected left hand to win, got %s", s.Outcome)
	}

	left, right, err = ParseDeal("3H 6D KH 2H 4H 2D 7H 7H KS JH")
	if err != nil {
		t.Fatal(err)
	}
	s = Evaluate(left, right, Faithful)
	if s.Left.Category != HighCard || s.Left.Order[0].Rank() != King {
		t.Errorf("expected left King high, got %s %s", s.Left.Category, s.Left.Order[0])
	}
	if s.Right.Category != OnePair {
		t.Errorf("expected right One Pair, got %s", s.Right.Category)
	}
	if s.Outcome != RightWins {
		t.Errorf("expected right hand to win, got %s", s.Outcome)
	}
}

// TestStrengthCollision shows that faithful rules cannot tell a straight
// flush from a royal flush by strength alone.
func TestStrengthCollision(t *testing.T) {
	royal := Classify(mustHand(t, "TS JS QS KS AS"), Faithful)
	straightFlush := Classify(mustHand(t, "9H TH JH QH KH"), Faithful)
	if royal.Strength != straightFlush.Strength {
		t.Errorf("expected equal strengths, got %d and %d", royal.Strength, straightFlush.Strength)
	}

	royal = Classify(mustHand(t, "TS JS QS KS AS"), Standard)
	straightFlush = Classify(mustHand(t, "9H TH JH QH KH"), Standard)
	if royal.Strength <= straightFlush.Strength {
		t.Errorf("expected royal flush to be stronger, got %d and %d", royal.Strength, straightFlush.Strength)
	}
}

func TestCompareOrdering(t *testing.T) {
	for _, rules := range []RuleSet{Faithful, Standard} {
		results := make([]Result, len(fixtureHands))
		for i, s := range fixtureHands {
			results[i] = Classify(mustHand(t, s), rules)
		}
		for i, a := range results {
			if Compare(a, a) != 0 {
				t.Errorf("%s: %s does not draw with itself", rules, fixtureHands[i])
			}
			for j, b := range results {
				if Compare(a, b) != -Compare(b, a) {
					t.Errorf("%s: compare not antisymmetric for %s and %s", rules, fixtureHands[i], fixtureHands[j])
				}
				for k, c := range results {
					if Compare(a, b) >= 0 && Compare(b, c) >= 0 && Compare(a, c) < 0 {
						t.Errorf("%s: compare not transitive for %s, %s, %s", rules, fixtureHands[i], fixtureHands[j], fixtureHands[k])
					}
				}
			}
		}
	}
}

func TestCompareStrengthFirst(t *testing.T) {
	pair := Classify(mustHand(t, "2C 2D 3H 4S 5C"), Faithful)
	high := Classify(mustHand(t, "AC KD QH 9S 8C"), Faithful)
	if Compare(pair, high) != 1 {
		t.Fatal("expected a pair of twos to beat ace high")
	}
}
