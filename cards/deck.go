package cards

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/danyowoj/Mental-Poker/crypto"
)

// ErrInsufficientDeck means more cards were requested than remain.
var ErrInsufficientDeck = errors.New("cards: not enough cards left in the deck")

// Deck is a plain, unencrypted deck. It exists for local dealing outside the
// encrypted protocol and for tests; games between distrusting players must
// go through the protocol package instead.
type Deck struct {
	cards []Card
}

// NewDeck returns a full 52-card deck in Standard order.
func NewDeck() *Deck {
	return &Deck{cards: Standard()}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Shuffle applies a uniform Fisher-Yates permutation drawn from rnd.
func (d *Deck) Shuffle(rnd crypto.Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rnd.IntN(big.NewInt(int64(i + 1))).Int64()
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: %d requested, %d left", ErrInsufficientDeck, n, len(d.cards))
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}
