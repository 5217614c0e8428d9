package game

// LCG constants. Changing these reshuffles every future daily puzzle, so
// they are deliberately spelled out rather than derived.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff // 31-bit state
	lcgModulus    = 1 << 31
)

// RNG is a linear congruential generator producing a reproducible stream
// of floats in [0, 1). Two generators built from the same seed emit
// bit-identical sequences, which is what makes daily puzzles the same on
// every device. It is intentionally not cryptographically secure.
type RNG struct {
	state int64
}

// NewRNG creates a generator from an integer seed. The seed is masked to
// 31 bits so negative or oversized seeds still produce a valid state.
func NewRNG(seed int64) *RNG {
	return &RNG{state: seed & lcgMask}
}

// Next advances the generator and returns a float in [0, 1).
func (r *RNG) Next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) & lcgMask
	return float64(r.state) / float64(lcgModulus)
}

// Intn returns an integer in [0, n) drawn from the stream. It consumes
// exactly one draw.
func (r *RNG) Intn(n int) int {
	return int(r.Next() * float64(n))
}
