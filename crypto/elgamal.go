package crypto

import "math/big"

// Ciphertext is one ElGamal layer over a value: A = G^k and B = m*Y^k for
// the encrypting key's public element Y and a fresh ephemeral k. Encryption
// is non-deterministic, the same value never produces the same pair twice
// except with negligible probability.
type Ciphertext struct {
	A *big.Int
	B *big.Int
}

// Encrypt encrypts m under the public element y. It never fails for values
// in [1, P).
func (params Parameters) Encrypt(m, y *big.Int, rnd Source) Ciphertext {
	k := params.ephemeral(rnd)
	a := new(big.Int).Exp(params.G, k, params.P)
	b := new(big.Int).Exp(y, k, params.P)
	b.Mul(b, m).Mod(b, params.P)
	return Ciphertext{A: a, B: b}
}

// Decrypt removes one encryption layer with the private exponent x and
// returns the recovered value. The inverse of A^x is computed as
// A^(P-1-x) mod P, which is valid because P is prime. Decrypting with a key
// that does not match the layer silently yields a meaningless value; callers
// own the key-order bookkeeping.
func (params Parameters) Decrypt(ct Ciphertext, x *big.Int) *big.Int {
	exp := new(big.Int).Sub(params.P, one)
	exp.Sub(exp, x)
	inv := new(big.Int).Exp(ct.A, exp, params.P)
	m := new(big.Int).Mul(ct.B, inv)
	return m.Mod(m, params.P)
}

// ReEncrypt re-randomizes a ciphertext without decrypting it: both
// components change but the pair still decrypts to the same value under the
// same key. y must be the public element of the layer being re-randomized.
func (params Parameters) ReEncrypt(ct Ciphertext, y *big.Int, rnd Source) Ciphertext {
	k := params.ephemeral(rnd)
	a := new(big.Int).Exp(params.G, k, params.P)
	a.Mul(a, ct.A).Mod(a, params.P)
	b := new(big.Int).Exp(y, k, params.P)
	b.Mul(b, ct.B).Mod(b, params.P)
	return Ciphertext{A: a, B: b}
}

func (params Parameters) ephemeral(rnd Source) *big.Int {
	pMinusTwo := new(big.Int).Sub(params.P, two)
	return intRange(rnd, two, pMinusTwo)
}
