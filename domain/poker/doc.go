// Package poker classifies 5-card poker hands and decides the winner between
// two of them.
//
// # Core Types
//
// Card: A playing card with a rank from 2 to 14 (ace high) and a suit.
//
// Hand: Five cards in the order they were dealt.
//
// Result: The category a hand belongs to, its strength and the tie-break
// ordering of its cards.
//
// # Classification
//
// Hands are tested against the ten categories from Royal Flush down to High
// Card and the first match wins. Each category produces its own ordering of
// the five cards: grouped cards (quads, trips, pairs) first, then kickers by
// descending rank.
//
// # Comparison
//
// Two results are compared by strength first and then rank by rank along
// their orderings. When every rank matches the hands draw.
//
// # Rule Sets
//
// Faithful reproduces the historical behaviour of the evaluator, quirks
// included. Standard applies regular poker ranking and agrees with the
// reference evaluator exposed by ReferenceDecide.
package poker
