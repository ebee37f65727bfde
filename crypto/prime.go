package crypto

import "math/big"

// DefaultRounds is the Miller-Rabin round count used throughout the module.
// It bounds the false-positive probability by 4^-40.
const DefaultRounds = 40

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Primes below 100, used for cheap trial division before the witness loop.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43,
	47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// IsProbablePrime reports whether n is prime using rounds iterations of the
// Miller-Rabin witness test, drawing bases from rnd. A composite passes with
// probability at most 4^-rounds; a prime never fails.
func IsProbablePrime(n *big.Int, rounds int, rnd Source) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	rem := new(big.Int)
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return true
		}
		if rem.Mod(n, p).Sign() == 0 {
			return false
		}
	}

	// Write n-1 as 2^r * d with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nMinusTwo := new(big.Int).Sub(n, two)
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a := intRange(rnd, two, nMinusTwo)
		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		witness := true
		for j := 0; j < r-1; j++ {
			x.Exp(x, two, n)
			if x.Cmp(nMinusOne) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}
