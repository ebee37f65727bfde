package cards

import "testing"

func TestCardString(t *testing.T) {
	cases := []struct {
		card  Card
		label string
	}{
		{Card{Rank: Ace, Suit: Spades}, "A♠"},
		{Card{Rank: Ten, Suit: Hearts}, "10♥"},
		{Card{Rank: Two, Suit: Clubs}, "2♣"},
		{Card{Rank: Queen, Suit: Diamonds}, "Q♦"},
	}
	for _, c := range cases {
		if got := c.card.String(); got != c.label {
			t.Fatalf("expected %q, got %q", c.label, got)
		}
	}
}

func TestParseCardInvertsString(t *testing.T) {
	for _, card := range Standard() {
		parsed, err := ParseCard(card.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != card {
			t.Fatalf("expected %v, got %v", card, parsed)
		}
	}
}

func TestParseCardRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "A", "1♠", "11♥", "A♤", "AA♠"} {
		if _, err := ParseCard(label); err == nil {
			t.Fatalf("expected error for %q", label)
		}
	}
}

func TestNewCardRejectsOutOfRange(t *testing.T) {
	if _, err := NewCard(Rank(1), Spades); err == nil {
		t.Fatal("expected error for rank 1")
	}
	if _, err := NewCard(Ace, Suit(4)); err == nil {
		t.Fatal("expected error for suit 4")
	}
}

func TestStandardHas52DistinctCards(t *testing.T) {
	deck := Standard()
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}
	seen := map[Card]bool{}
	for _, card := range deck {
		if seen[card] {
			t.Fatalf("duplicate card %v", card)
		}
		seen[card] = true
	}
}
