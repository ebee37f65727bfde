// Package crypto implements the number-theoretic core of the mental poker
// protocol: safe-prime group parameter generation, Miller-Rabin primality
// testing, per-player key pairs and the ElGamal cipher used to layer-encrypt
// and re-randomize cards.
//
// All arithmetic happens in the multiplicative group modulo a safe prime p,
// shared by every player of a session. Every randomized operation takes an
// explicit Source so that tests and demos can run deterministically.
//
// The cipher performs no key-order validation. Removing encryption layers
// with the wrong key or in the wrong order yields a meaningless value, not
// an error; the protocol package is responsible for the bookkeeping.
package crypto
