package crypto

import (
	"errors"
	"fmt"
	"math/big"
)

// MinBitLength is the smallest accepted modulus size. 512 bits is fine for
// tests and demos, production sessions should use at least 2048.
const MinBitLength = 64

var (
	// ErrBitLength means the requested modulus size cannot be served.
	ErrBitLength = errors.New("crypto: bit length too small")
	// ErrNoGenerator means the generator search exhausted its range. With a
	// correctly factored group order this is unreachable, so hitting it
	// indicates broken parameters and the session cannot proceed.
	ErrNoGenerator = errors.New("crypto: no generator of the full group found")
)

// Parameters is the shared algebraic domain of one protocol session: a safe
// prime modulus P and a generator G of the full multiplicative group of
// order P-1. Parameters are generated once and treated as read-only by all
// players.
type Parameters struct {
	P *big.Int
	G *big.Int
}

// Q returns (P-1)/2, the prime cofactor of the group order.
func (params Parameters) Q() *big.Int {
	q := new(big.Int).Sub(params.P, one)
	return q.Rsh(q, 1)
}

// GenerateParameters produces group parameters with a safe prime modulus of
// exactly bits bits. It keeps drawing candidates until one fits, so the only
// error cases are an undersized request and a failed generator search.
func GenerateParameters(bits int, rnd Source) (Parameters, error) {
	if bits < MinBitLength {
		return Parameters{}, fmt.Errorf("%w: %d bits requested, minimum is %d", ErrBitLength, bits, MinBitLength)
	}
	p, q := generateSafePrime(bits, rnd)
	g, err := findGenerator(p, q)
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{P: p, G: g}, nil
}

// generateSafePrime draws prime candidates q of bits-1 bits until p = 2q+1
// is itself prime and has exactly the requested bit length.
func generateSafePrime(bits int, rnd Source) (p, q *big.Int) {
	for {
		q = randomOdd(bits-1, rnd)
		if !IsProbablePrime(q, DefaultRounds, rnd) {
			continue
		}
		p = new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if p.BitLen() == bits && IsProbablePrime(p, DefaultRounds, rnd) {
			return p, q
		}
	}
}

// randomOdd returns an odd integer with exactly bits bits.
func randomOdd(bits int, rnd Source) *big.Int {
	span := new(big.Int).Lsh(one, uint(bits-1))
	n := rnd.IntN(span)
	n.Or(n, new(big.Int).Lsh(one, uint(bits-1)))
	n.SetBit(n, 0, 1)
	return n
}

// findGenerator searches ascending from 2 for an element of full order p-1.
// Since p = 2q+1, the order of any element divides 2q, so g generates the
// whole group exactly when g^((p-1)/2) != 1 and g^((p-1)/q) != 1 mod p.
func findGenerator(p, q *big.Int) (*big.Int, error) {
	pMinusOne := new(big.Int).Sub(p, one)
	factors := []*big.Int{two, q}
	exp := new(big.Int)
	res := new(big.Int)
	for g := big.NewInt(2); g.Cmp(p) < 0; g.Add(g, one) {
		full := true
		for _, f := range factors {
			exp.Div(pMinusOne, f)
			if res.Exp(g, exp, p).Cmp(one) == 0 {
				full = false
				break
			}
		}
		if full {
			return new(big.Int).Set(g), nil
		}
	}
	return nil, ErrNoGenerator
}
