package rules

// DefaultScarcityBound is the upper bound of the scarcity draw.
const DefaultScarcityBound = 5000

// Source is the random capability the loaders draw from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// FewItemsLeft decides the "hurry, few left" hint for a stock record. Out of
// stock items are never flagged and consume no draw. For in-stock items a value
// v in [0, bound) is drawn and the item is flagged when ((v mod bound)+1) mod 10
// is at most 5, which flags roughly 60% of them.
func FewItemsLeft(src Source, inStock bool, bound int) bool {
	if !inStock {
		return false
	}
	if bound <= 0 {
		bound = DefaultScarcityBound
	}
	v := src.Intn(bound)
	return (v%bound+1)%10 <= 5
}
