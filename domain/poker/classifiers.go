package poker

import "sort"

type matchFunc func(h Hand, rules RuleSet) ([HandSize]Card, bool)

type classifier struct {
	category Category
	match    matchFunc
}

// pipeline is ordered strongest category first; the first match wins.
var pipeline = [...]classifier{
	{RoyalFlush, matchRoyalFlush},
	{StraightFlush, matchStraightFlush},
	{FourOfAKind, matchFourOfAKind},
	{FullHouse, matchFullHouse},
	{Flush, matchFlush},
	{Straight, matchStraight},
	{ThreeOfAKind, matchThreeOfAKind},
	{TwoPair, matchTwoPair},
	{OnePair, matchOnePair},
	{HighCard, matchHighCard},
}

// Match tests h against category c alone, without giving stronger categories
// a chance first. It returns the tie-break ordering when h matches.
func (c Category) Match(h Hand, rules RuleSet) ([HandSize]Card, bool) {
	for _, cl := range pipeline {
		if cl.category == c {
			return cl.match(h, rules)
		}
	}
	return [HandSize]Card{}, false
}

func matchRoyalFlush(h Hand, rules RuleSet) ([HandSize]Card, bool) {
	order, ok := matchStraightFlush(h, rules)
	if !ok || order[0].rank != Ace {
		return [HandSize]Card{}, false
	}
	return order, true
}

func matchStraightFlush(h Hand, rules RuleSet) ([HandSize]Card, bool) {
	if !isFlush(h) {
		return [HandSize]Card{}, false
	}
	return straightOrder(h, rules)
}

func matchFourOfAKind(h Hand, _ RuleSet) ([HandSize]Card, bool) {
	groups := groupByRank(h)
	if shape(groups)[4] != 1 {
		return [HandSize]Card{}, false
	}
	return leadWith(groups, 4), true
}

func matchFullHouse(h Hand, rules RuleSet) ([HandSize]Card, bool) {
	groups := groupByRank(h)
	s := shape(groups)
	if s[3] != 1 || s[2] != 1 {
		return [HandSize]Card{}, false
	}
	if rules == Standard {
		return leadWith(groups, 3), true
	}
	return byRankDesc(h), true
}

func matchFlush(h Hand, _ RuleSet) ([HandSize]Card, bool) {
	if !isFlush(h) {
		return [HandSize]Card{}, false
	}
	return byRankDesc(h), true
}

func matchStraight(h Hand, rules RuleSet) ([HandSize]Card, bool) {
	return straightOrder(h, rules)
}

func matchThreeOfAKind(h Hand, _ RuleSet) ([HandSize]Card, bool) {
	groups := groupByRank(h)
	if shape(groups)[3] != 1 {
		return [HandSize]Card{}, false
	}
	return leadWith(groups, 3), true
}

func matchTwoPair(h Hand, _ RuleSet) ([HandSize]Card, bool) {
	groups := groupByRank(h)
	if shape(groups)[2] != 2 {
		return [HandSize]Card{}, false
	}
	return leadWith(groups, 2), true
}

func matchOnePair(h Hand, _ RuleSet) ([HandSize]Card, bool) {
	groups := groupByRank(h)
	s := shape(groups)
	if s[2] != 1 || s[3] != 0 || s[4] != 0 {
		return [HandSize]Card{}, false
	}
	return leadWith(groups, 2), true
}

func matchHighCard(h Hand, _ RuleSet) ([HandSize]Card, bool) {
	return byRankDesc(h), true
}

// straightOrder reports whether the five distinct ranks of h form a run.
// Faithful rules compare only the four highest cards, so the gap to the
// lowest card is never checked. Standard rules check every gap and accept
// A-2-3-4-5 with the ace moved to the end.
func straightOrder(h Hand, rules RuleSet) ([HandSize]Card, bool) {
	if len(groupByRank(h)) != HandSize {
		return [HandSize]Card{}, false
	}
	sorted := byRankDesc(h)
	checked := HandSize - 1
	if rules == Standard {
		checked = HandSize
	}
	if isRun(sorted[:checked]) {
		return sorted, true
	}
	if rules == Standard && sorted[0].rank == Ace && sorted[HandSize-1].rank == Two && isRun(sorted[1:]) {
		var wheel [HandSize]Card
		copy(wheel[:], sorted[1:])
		wheel[HandSize-1] = sorted[0]
		return wheel, true
	}
	return [HandSize]Card{}, false
}

// isRun expects cards sorted by descending rank.
func isRun(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i-1].rank != cards[i].rank+1 {
			return false
		}
	}
	return true
}

func isFlush(h Hand) bool {
	for _, c := range h[1:] {
		if c.suit != h[0].suit {
			return false
		}
	}
	return true
}

type rankGroup struct {
	rank  Rank
	cards []Card
}

// groupByRank groups the cards of h by rank in order of first appearance.
func groupByRank(h Hand) []rankGroup {
	groups := make([]rankGroup, 0, HandSize)
	for _, c := range h {
		found := false
		for i := range groups {
			if groups[i].rank == c.rank {
				groups[i].cards = append(groups[i].cards, c)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, rankGroup{rank: c.rank, cards: []Card{c}})
		}
	}
	return groups
}

// shape[n] is the number of ranks held exactly n times.
func shape(groups []rankGroup) [HandSize + 1]int {
	var s [HandSize + 1]int
	for _, g := range groups {
		s[len(g.cards)]++
	}
	return s
}

// leadWith puts the cards of every group of the given size first, higher
// groups before lower ones, then the remaining cards by descending rank.
func leadWith(groups []rankGroup, size int) [HandSize]Card {
	var lead, rest []Card
	for _, g := range groups {
		if len(g.cards) == size {
			lead = append(lead, g.cards...)
		} else {
			rest = append(rest, g.cards...)
		}
	}
	sortByRankDesc(lead)
	sortByRankDesc(rest)

	var out [HandSize]Card
	n := copy(out[:], lead)
	copy(out[n:], rest)
	return out
}

func byRankDesc(h Hand) [HandSize]Card {
	var out [HandSize]Card = h
	sortByRankDesc(out[:])
	return out
}

// sortByRankDesc is stable so equal ranks keep their dealt order.
func sortByRankDesc(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].rank > cards[j].rank
	})
}
