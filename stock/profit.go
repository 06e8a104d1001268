package stock

// Number is the set of quote types MaxProfit accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MaxProfit returns the largest total profit obtainable from quotes, or 0 when
// no profitable trade exists. Empty and single-quote inputs yield 0.
func MaxProfit[T Number](quotes []T) T {
	var profit T
	if len(quotes) < 2 {
		return profit
	}
	// Scan backwards keeping the best later selling price.
	best := quotes[len(quotes)-1]
	for i := len(quotes) - 2; i >= 0; i-- {
		q := quotes[i]
		if q > best {
			best = q
			continue
		}
		profit += best - q
	}

	return profit
}

// Trade is one buy of a single unit together with the day it is sold.
type Trade struct {
	Buy, Sell int // day indexes into the quote slice
}

// Plan returns the trades that realize MaxProfit, in buy-day order. Days whose
// quote is not below a later quote are skipped. Ties in the selling price are
// resolved towards the earliest best day.
func Plan[T Number](quotes []T) []Trade {
	if len(quotes) < 2 {
		return nil
	}
	sellAt := make([]int, len(quotes))
	best := len(quotes) - 1
	for i := len(quotes) - 2; i >= 0; i-- {
		sellAt[i] = best
		if quotes[i] >= quotes[best] {
			best = i
		}
	}
	var trades []Trade
	for i := 0; i < len(quotes)-1; i++ {
		if quotes[sellAt[i]] > quotes[i] {
			trades = append(trades, Trade{Buy: i, Sell: sellAt[i]})
		}
	}

	return trades
}
