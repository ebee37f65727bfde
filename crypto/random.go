package crypto

import (
	"crypto/cipher"
	"math/big"
	mrand "math/rand"

	"go.dedis.ch/kyber/v4/util/random"
)

// Source yields uniformly distributed big integers. Every randomized
// operation in this module draws from an explicit Source instead of an
// ambient process-wide generator, so a seeded Source makes a whole protocol
// run reproducible.
type Source interface {
	// IntN returns a uniform integer in [0, max). max must be positive.
	IntN(max *big.Int) *big.Int
}

type streamSource struct {
	stream cipher.Stream
}

// NewSource returns a Source backed by a cryptographic random stream.
// This is the Source to use for real games.
func NewSource() Source {
	return &streamSource{stream: random.New()}
}

func (s *streamSource) IntN(max *big.Int) *big.Int {
	return random.Int(max, s.stream)
}

type seededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source suitable for tests and
// reproducible demos only. Its output is predictable from the seed and must
// never back a real game.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) IntN(max *big.Int) *big.Int {
	return new(big.Int).Rand(s.rng, max)
}

// intRange returns a uniform integer in [min, max], bounds included.
func intRange(rnd Source, min, max *big.Int) *big.Int {
	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))
	n := rnd.IntN(span)
	return n.Add(n, min)
}
