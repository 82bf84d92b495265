package suballoc

// CheckInvariants exposes the internal invariant walker to the tests.
func CheckInvariants(a *Allocator) error { return a.checkInvariants() }

// Bin encoding internals, exposed for the tests.
var (
	BinRoundUp   = binRoundUp
	BinRoundDown = binRoundDown
	BinToSize    = binToSize
)
