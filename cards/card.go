package cards

import (
	"errors"
	"fmt"
	"strings"
)

// Suit order matches the codec's prime assignment order:
// ♠spades -> ♥hearts -> ♦diamonds -> ♣clubs.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Rank runs from Two to Ace, aces high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrUnknownCard means a label does not name one of the 52 cards.
var ErrUnknownCard = errors.New("cards: unknown card label")

// Card is one of the 52 playing cards.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard validates rank and suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if suit > Clubs || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrUnknownCard, rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

var suitSymbols = [...]string{"♠", "♥", "♦", "♣"}

func (s Suit) String() string {
	if int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s]
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// String returns the card label, e.g. "A♠" or "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard is the inverse of String.
func ParseCard(label string) (Card, error) {
	for s, symbol := range suitSymbols {
		if !strings.HasSuffix(label, symbol) {
			continue
		}
		rankPart := strings.TrimSuffix(label, symbol)
		for r := Two; r <= Ace; r++ {
			if r.String() == rankPart {
				return Card{Rank: r, Suit: Suit(s)}, nil
			}
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, label)
}

// Standard returns the 52 cards in codec order: suits ♠♥♦♣, ranks 2 to A
// within each suit.
func Standard() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
