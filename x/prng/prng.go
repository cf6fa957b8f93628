package prng

// Sequence is a tiny shift-xor pseudo-random generator for perceptual
// variation (hue speeds and the like). Deterministic for a given seed,
// not remotely cryptographic.
//
// The step is seed = seed<<1 ^ seed>>30 ^ 0x6C078965; callers that pin
// golden outputs rely on this exact recurrence, so do not "improve" it.
type Sequence struct {
	seed uint32
}

// DefaultSeed is the seed used when a Sequence is constructed with New.
const DefaultSeed uint32 = 0x12345678

// New returns a Sequence with the default seed.
func New() *Sequence { return &Sequence{seed: DefaultSeed} }

// WithSeed returns a Sequence with a caller-chosen seed.
func WithSeed(seed uint32) *Sequence { return &Sequence{seed: seed} }

// Next advances the generator and returns the new raw 32-bit state.
func (s *Sequence) Next() uint32 {
	s.seed = (s.seed << 1) ^ (s.seed >> 30) ^ 0x6C078965
	return s.seed
}

// IntIn advances the generator and returns a value in [lo, hi].
// lo > hi is treated as the empty range and returns lo unadvanced.
func (s *Sequence) IntIn(lo, hi uint8) uint8 {
	if lo > hi {
		return lo
	}
	n := s.Next()
	return lo + uint8(n%uint32(hi-lo+1))
}

// Seed reports the current raw state, for status consoles.
func (s *Sequence) Seed() uint32 { return s.seed }
