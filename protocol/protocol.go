package protocol

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/danyowoj/Mental-Poker/cards"
	"github.com/danyowoj/Mental-Poker/crypto"
)

var (
	// ErrNotPrepared means a deck operation ran before PrepareEncryptedDeck.
	ErrNotPrepared = errors.New("protocol: deck has not been prepared")
	// ErrUnknownKey means a public key is not part of the agreed key order.
	ErrUnknownKey = errors.New("protocol: public key is not part of the agreed order")
	// ErrKeyCount means the number of keys offered for a reveal does not
	// match the number of encryption layers on the card.
	ErrKeyCount = errors.New("protocol: key count does not match layer count")
)

// Phase is the lifecycle state of the current deck.
type Phase string

const (
	PhaseUnsealed  Phase = "unsealed"
	PhaseLayered   Phase = "layered"
	PhaseShuffled  Phase = "shuffled"
	PhaseRevealing Phase = "revealing"
)

// EncryptedCard is one deck entry. Every encryption layer contributes one
// share (the A component of that layer's ElGamal pair, in layering order)
// while Value carries the card code under the combined masks. The pair
// (Shares[i], Value) is exactly the ciphertext of layer i, which is what
// keeps each player's re-randomization independent of the other layers.
type EncryptedCard struct {
	Shares []*big.Int
	Value  *big.Int
}

// Layers returns the number of encryption layers on the card.
func (c *EncryptedCard) Layers() int {
	return len(c.Shares)
}

func (c *EncryptedCard) clone() *EncryptedCard {
	shares := make([]*big.Int, len(c.Shares))
	for i, s := range c.Shares {
		shares[i] = new(big.Int).Set(s)
	}
	return &EncryptedCard{Shares: shares, Value: new(big.Int).Set(c.Value)}
}

// Protocol orchestrates one session's deck operations. It owns the agreed
// public-key order fixed at preparation time and prevents key-order
// mistakes procedurally; the cipher itself never validates keys.
type Protocol struct {
	params crypto.Parameters
	codec  *cards.Codec
	rnd    crypto.Source

	keys     []*big.Int
	shuffles map[int]bool
	phase    Phase
}

// New creates a Protocol over the shared group parameters. The codec is
// built once from the same primality tester the parameters came from.
func New(params crypto.Parameters, rnd crypto.Source) *Protocol {
	return &Protocol{
		params: params,
		codec:  cards.NewCodec(rnd),
		rnd:    rnd,
		phase:  PhaseUnsealed,
	}
}

// Codec exposes the session's card codec.
func (p *Protocol) Codec() *cards.Codec {
	return p.codec
}

// Phase returns the lifecycle state of the current deck.
func (p *Protocol) Phase() Phase {
	return p.phase
}

// Reset aborts the current run. A partially shuffled deck cannot be
// resumed, the next hand starts from an unsealed deck.
func (p *Protocol) Reset() {
	p.keys = nil
	p.shuffles = nil
	p.phase = PhaseUnsealed
}

// PrepareEncryptedDeck layers all 52 card codes under every public key in
// the given order. The order is fixed for the rest of the run: shuffles
// resolve each player's layer against it and reveals must strip it in
// reverse.
func (p *Protocol) PrepareEncryptedDeck(publicKeys []*big.Int) ([]*EncryptedCard, error) {
	if len(publicKeys) == 0 {
		return nil, fmt.Errorf("%w: no public keys", ErrUnknownKey)
	}
	deck := make([]*EncryptedCard, 0, cards.DeckSize)
	for _, code := range p.codec.Codes() {
		card := &EncryptedCard{Value: code}
		for _, y := range publicKeys {
			ct := p.params.Encrypt(card.Value, y, p.rnd)
			card.Shares = append(card.Shares, ct.A)
			card.Value = ct.B
		}
		deck = append(deck, card)
	}
	p.keys = make([]*big.Int, len(publicKeys))
	for i, y := range publicKeys {
		p.keys[i] = new(big.Int).Set(y)
	}
	p.shuffles = make(map[int]bool, len(publicKeys))
	p.phase = PhaseLayered
	return deck, nil
}

// ShuffleEncryptedDeck is one player's turn: every layer of every entry is
// re-randomized with that layer's public key and the whole deck is permuted
// uniformly. The input deck is left untouched. Re-randomizing all layers,
// not just the shuffler's own, is what keeps the permutation opaque: a
// single surviving component would let another player link entries across
// the shuffle and recover it.
func (p *Protocol) ShuffleEncryptedDeck(deck []*EncryptedCard, publicKey *big.Int) ([]*EncryptedCard, error) {
	if p.phase == PhaseUnsealed {
		return nil, ErrNotPrepared
	}
	layer := -1
	for i, y := range p.keys {
		if y.Cmp(publicKey) == 0 {
			layer = i
			break
		}
	}
	if layer < 0 {
		return nil, ErrUnknownKey
	}

	shuffled := make([]*EncryptedCard, len(deck))
	for i, card := range deck {
		if card.Layers() != len(p.keys) {
			return nil, fmt.Errorf("%w: card %d has %d layers, agreed order has %d keys", ErrKeyCount, i, card.Layers(), len(p.keys))
		}
		next := card.clone()
		for j, y := range p.keys {
			ct := p.params.ReEncrypt(crypto.Ciphertext{A: next.Shares[j], B: next.Value}, y, p.rnd)
			next.Shares[j] = ct.A
			next.Value = ct.B
		}
		shuffled[i] = next
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := p.rnd.IntN(big.NewInt(int64(i + 1))).Int64()
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	p.shuffles[layer] = true
	if len(p.shuffles) == len(p.keys) {
		p.phase = PhaseShuffled
	}
	return shuffled, nil
}

// DecryptCard reveals one card. privateKeys must come in the agreed
// layering order, the same order the public keys were given to
// PrepareEncryptedDeck; layers are stripped in reverse internally. A code
// lookup miss after all layers are stripped means the run is corrupted and
// is surfaced as the codec's not-found error.
func (p *Protocol) DecryptCard(card *EncryptedCard, privateKeys []*big.Int) (string, error) {
	if len(privateKeys) != card.Layers() {
		return "", fmt.Errorf("%w: %d keys for %d layers", ErrKeyCount, len(privateKeys), card.Layers())
	}
	if p.phase == PhaseShuffled {
		p.phase = PhaseRevealing
	}
	value := new(big.Int).Set(card.Value)
	for i := len(privateKeys) - 1; i >= 0; i-- {
		value = p.params.Decrypt(crypto.Ciphertext{A: card.Shares[i], B: value}, privateKeys[i])
	}
	return p.codec.NumberToCard(value)
}

// PartialDecrypt strips exactly one layer, the outermost one, and returns
// the remaining card. privateKey must belong to the last key of the agreed
// order still present on the card.
func (p *Protocol) PartialDecrypt(card *EncryptedCard, privateKey *big.Int) (*EncryptedCard, error) {
	n := card.Layers()
	if n == 0 {
		return nil, fmt.Errorf("%w: card has no layers", ErrKeyCount)
	}
	value := p.params.Decrypt(crypto.Ciphertext{A: card.Shares[n-1], B: card.Value}, privateKey)
	shares := make([]*big.Int, n-1)
	for i := range shares {
		shares[i] = new(big.Int).Set(card.Shares[i])
	}
	return &EncryptedCard{Shares: shares, Value: value}, nil
}

// Draw splits the top n cards off a deck. Consuming more cards than remain
// is the insufficient-deck error from the cards package.
func Draw(deck []*EncryptedCard, n int) (drawn, rest []*EncryptedCard, err error) {
	if n < 0 || n > len(deck) {
		return nil, nil, fmt.Errorf("%w: %d requested, %d left", cards.ErrInsufficientDeck, n, len(deck))
	}
	return deck[:n], deck[n:], nil
}
