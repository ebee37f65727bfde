package crypto

import (
	"math/big"
	"testing"
)

func TestIsProbablePrimeKnownValues(t *testing.T) {
	rnd := NewSeededSource(1)
	primes := []int64{2, 3, 5, 7, 13, 101, 7919, 104729}
	for _, p := range primes {
		if !IsProbablePrime(big.NewInt(p), DefaultRounds, rnd) {
			t.Fatalf("%d reported composite", p)
		}
	}
	composites := []int64{0, 1, 4, 9, 15, 561, 1105, 8911, 104730}
	for _, c := range composites {
		if IsProbablePrime(big.NewInt(c), DefaultRounds, rnd) {
			t.Fatalf("%d reported prime", c)
		}
	}
}

func TestIsProbablePrimeMersenne(t *testing.T) {
	// 2^127 - 1 is prime, 2^128 - 1 is not.
	rnd := NewSeededSource(2)
	m127 := new(big.Int).Lsh(big.NewInt(1), 127)
	m127.Sub(m127, big.NewInt(1))
	if !IsProbablePrime(m127, DefaultRounds, rnd) {
		t.Fatal("2^127-1 reported composite")
	}
	m128 := new(big.Int).Lsh(big.NewInt(1), 128)
	m128.Sub(m128, big.NewInt(1))
	if IsProbablePrime(m128, DefaultRounds, rnd) {
		t.Fatal("2^128-1 reported prime")
	}
}

func TestIsProbablePrimeAgreesWithStdlib(t *testing.T) {
	rnd := NewSeededSource(3)
	max := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := 0; i < 200; i++ {
		n := rnd.IntN(max)
		got := IsProbablePrime(n, DefaultRounds, rnd)
		want := n.ProbablyPrime(40)
		if got != want {
			t.Fatalf("disagreement on %s: got %v, stdlib says %v", n, got, want)
		}
	}
}

func TestFirstPrimes(t *testing.T) {
	rnd := NewSeededSource(4)
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	i := 0
	for n := int64(2); i < len(want); n++ {
		if IsProbablePrime(big.NewInt(n), DefaultRounds, rnd) {
			if n != want[i] {
				t.Fatalf("prime %d: expected %d, got %d", i, want[i], n)
			}
			i++
		}
	}
}
