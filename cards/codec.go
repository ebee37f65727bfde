package cards

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/danyowoj/Mental-Poker/crypto"
)

// ErrUnknownCode means a numeric value does not correspond to any card code.
// When it surfaces during a reveal the protocol run is corrupted: either a
// layer was stripped with the wrong key or the deck was tampered with.
var ErrUnknownCode = errors.New("cards: no card with this code")

// Codec is the fixed bijection between the 52 card labels and 52 distinct
// prime codes. The codes are the first 52 primes, so that no product or
// power of codes is ever ambiguous. Both lookup directions are built once
// and never mutated.
type Codec struct {
	byLabel map[string]*big.Int
	byCode  map[string]string
	labels  []string
}

// NewCodec enumerates the first 52 primes with the Miller-Rabin tester and
// assigns them to the cards in Standard order.
func NewCodec(rnd crypto.Source) *Codec {
	codes := firstPrimes(DeckSize, rnd)
	c := &Codec{
		byLabel: make(map[string]*big.Int, DeckSize),
		byCode:  make(map[string]string, DeckSize),
		labels:  make([]string, 0, DeckSize),
	}
	for i, card := range Standard() {
		label := card.String()
		c.byLabel[label] = codes[i]
		c.byCode[codes[i].String()] = label
		c.labels = append(c.labels, label)
	}
	return c
}

func firstPrimes(n int, rnd crypto.Source) []*big.Int {
	primes := make([]*big.Int, 0, n)
	for candidate := int64(2); len(primes) < n; candidate++ {
		p := big.NewInt(candidate)
		if crypto.IsProbablePrime(p, crypto.DefaultRounds, rnd) {
			primes = append(primes, p)
		}
	}
	return primes
}

// CardToNumber returns the prime code of a card label.
func (c *Codec) CardToNumber(label string) (*big.Int, error) {
	code, ok := c.byLabel[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, label)
	}
	return new(big.Int).Set(code), nil
}

// NumberToCard returns the card label for a prime code.
func (c *Codec) NumberToCard(n *big.Int) (string, error) {
	label, ok := c.byCode[n.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCode, n)
	}
	return label, nil
}

// Labels returns the 52 card labels in code-assignment order.
func (c *Codec) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Codes returns the 52 prime codes in label order.
func (c *Codec) Codes() []*big.Int {
	out := make([]*big.Int, 0, len(c.labels))
	for _, label := range c.labels {
		out = append(out, new(big.Int).Set(c.byLabel[label]))
	}
	return out
}
