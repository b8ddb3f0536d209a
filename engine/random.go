package engine

// Random is a uniform integer source; Intn returns a value in [0, n)
// *math/rand.Rand satisfies it
type Random interface {
	Intn(n int) int
}

// RandRange returns a value in [lo, hi); lo when the range is empty
func RandRange(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
