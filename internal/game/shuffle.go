package game

// Shuffle returns a shuffled copy of items using the Fisher-Yates
// algorithm driven by rng. The input slice is never mutated.
//
// The draw contract matters: exactly len(items)-1 draws are consumed, in
// strictly descending index order. Callers interleave several shuffles
// and takes against one shared generator and rely on the joint sequence
// being reproducible, so this function must never change how many draws
// it consumes or in what order.
func Shuffle[T any](items []T, rng *RNG) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
