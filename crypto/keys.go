package crypto

import "math/big"

// KeyPair is one player's identity within a session: the private exponent X
// and the public element Y = G^X mod P. X never leaves its owner; Y is
// shared with every other player.
type KeyPair struct {
	X *big.Int
	Y *big.Int
}

// GenerateKeyPair draws X uniformly from [2, P-2] and derives Y from it.
func GenerateKeyPair(params Parameters, rnd Source) KeyPair {
	pMinusTwo := new(big.Int).Sub(params.P, two)
	x := intRange(rnd, two, pMinusTwo)
	y := new(big.Int).Exp(params.G, x, params.P)
	return KeyPair{X: x, Y: y}
}
