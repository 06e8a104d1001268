// Package stock computes the most profit obtainable from a series of daily
// stock quotes.
//
// Each day a trader may buy one unit, sell any number of units already held,
// or do nothing. Every unit bought on day i is best sold on the highest later
// quote, so the answer is the sum over i of max(0, max_{j>i} q[j] − q[i]).
//
// Examples:
//
//	[1 2 3 4 5 6]    → 15  (buy at 1..5, sell all at 6)
//	[6 5 4 3 2 1]    → 0   (nothing worth buying)
//	[1 6 5 10 8 7]   → 18  (buy at 1, 6, 5 and sell all at 10)
//
// Complexity: O(n) time, O(1) memory. The input is never modified.
package stock
