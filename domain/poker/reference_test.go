package poker

import "testing"

// TestStandardAgreesWithReference checks the Standard rule set against the
// reference evaluator on hands where the two rule sets differ.
func TestStandardAgreesWithReference(t *testing.T) {
	deals := [][2]string{
		{"2C 2D 2H 5S 5C", "3C 3D 3H 4S 4C"},
		{"9H 8H 7H 6H 2H", "AC AD AH AS KC"},
		{"AC 2D 3H 4S 5C", "2S 3C 4D 5H 6S"},
		{"AC 2D 3H 4S 5C", "KC KD 9H 4D 2S"},
		{"9C 8D 7H 6S 2C", "AH KD 9S 7S 5H"},
		{"AD 2D 3D 4D 5D", "9C 9D 9H 9S 2C"},
		{"8C 8D KH TS 3C", "8H 8S QD TC 3D"},
		{"8C 8D 4H 4S KC", "8H 8S 4D 4C QH"},
		{"8C 8D KH TS 3C", "8H 8S KD TC 3D"},
		{"TS JS QS KS AS", "9H TH JH QH KH"},
		{"2C 7C 9C JC KC", "9D TD JH QS KS"},
	}
	for _, d := range deals {
		left, right := mustHand(t, d[0]), mustHand(t, d[1])
		want, err := ReferenceDecide(left, right)
		if err != nil {
			t.Fatalf("%s vs %s: %v", d[0], d[1], err)
		}
		if got := Decide(left, right, Standard); got != want {
			t.Errorf("%s vs %s: expected %s, got %s", d[0], d[1], want, got)
		}
	}
}

func TestDescribeHand(t *testing.T) {
	desc, err := DescribeHand(mustHand(t, "2D 7H 7C KS JH"))
	if err != nil {
		t.Fatal(err)
	}
	if desc == "" {
		t.Fatal("expected a description")
	}
}
