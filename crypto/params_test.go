package crypto

import (
	"errors"
	"math/big"
	"testing"
)

func TestGenerateParameters(t *testing.T) {
	rnd := NewSeededSource(42)
	params, err := GenerateParameters(128, rnd)
	if err != nil {
		t.Fatal(err)
	}
	if params.P.BitLen() != 128 {
		t.Fatalf("expected 128-bit modulus, got %d bits", params.P.BitLen())
	}
	if !IsProbablePrime(params.P, DefaultRounds, rnd) {
		t.Fatal("modulus is not prime")
	}
	q := params.Q()
	if !IsProbablePrime(q, DefaultRounds, rnd) {
		t.Fatal("(p-1)/2 is not prime, modulus is not a safe prime")
	}
}

func TestGeneratorHasFullOrder(t *testing.T) {
	rnd := NewSeededSource(43)
	params, err := GenerateParameters(128, rnd)
	if err != nil {
		t.Fatal(err)
	}
	pMinusOne := new(big.Int).Sub(params.P, big.NewInt(1))
	for _, f := range []*big.Int{big.NewInt(2), params.Q()} {
		exp := new(big.Int).Div(pMinusOne, f)
		res := new(big.Int).Exp(params.G, exp, params.P)
		if res.Cmp(big.NewInt(1)) == 0 {
			t.Fatalf("g^((p-1)/%s) = 1, generator does not span the full group", f)
		}
	}
}

func TestGenerateParametersRejectsShortModulus(t *testing.T) {
	_, err := GenerateParameters(32, NewSeededSource(44))
	if !errors.Is(err, ErrBitLength) {
		t.Fatalf("expected ErrBitLength, got %v", err)
	}
}

func TestGenerateParametersDeterministicWithSeed(t *testing.T) {
	a, err := GenerateParameters(128, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateParameters(128, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}
	if a.P.Cmp(b.P) != 0 || a.G.Cmp(b.G) != 0 {
		t.Fatalf("same seed produced different parameters: (%s, %s) vs (%s, %s)", a.P, a.G, b.P, b.G)
	}
}
