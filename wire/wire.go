// Package wire serializes the protocol's shared values for the explicit
// deck hand-off between players: group parameters, single ciphertexts and
// whole encrypted decks. Big integers travel as big-endian byte strings
// inside protobuf messages.
package wire

import (
	"errors"
	"fmt"
	"math/big"

	"go.dedis.ch/protobuf"

	"github.com/danyowoj/Mental-Poker/crypto"
	"github.com/danyowoj/Mental-Poker/protocol"
)

// ErrMissingField means a decoded message lacks a required component.
var ErrMissingField = errors.New("wire: missing field")

// ParametersMsg carries a session's group parameters.
type ParametersMsg struct {
	P []byte
	G []byte
}

// CiphertextMsg carries one ElGamal pair.
type CiphertextMsg struct {
	A []byte
	B []byte
}

// CardMsg carries one layered deck entry.
type CardMsg struct {
	Shares [][]byte
	Value  []byte
}

// DeckMsg carries a whole encrypted deck.
type DeckMsg struct {
	Cards []CardMsg
}

// MarshalParameters encodes group parameters.
func MarshalParameters(params crypto.Parameters) ([]byte, error) {
	return protobuf.Encode(&ParametersMsg{P: params.P.Bytes(), G: params.G.Bytes()})
}

// UnmarshalParameters decodes group parameters.
func UnmarshalParameters(buf []byte) (crypto.Parameters, error) {
	var msg ParametersMsg
	if err := protobuf.Decode(buf, &msg); err != nil {
		return crypto.Parameters{}, fmt.Errorf("wire: decode parameters: %w", err)
	}
	if len(msg.P) == 0 || len(msg.G) == 0 {
		return crypto.Parameters{}, fmt.Errorf("%w: parameters need both p and g", ErrMissingField)
	}
	return crypto.Parameters{
		P: new(big.Int).SetBytes(msg.P),
		G: new(big.Int).SetBytes(msg.G),
	}, nil
}

// MarshalCiphertext encodes one ElGamal pair.
func MarshalCiphertext(ct crypto.Ciphertext) ([]byte, error) {
	return protobuf.Encode(&CiphertextMsg{A: ct.A.Bytes(), B: ct.B.Bytes()})
}

// UnmarshalCiphertext decodes one ElGamal pair.
func UnmarshalCiphertext(buf []byte) (crypto.Ciphertext, error) {
	var msg CiphertextMsg
	if err := protobuf.Decode(buf, &msg); err != nil {
		return crypto.Ciphertext{}, fmt.Errorf("wire: decode ciphertext: %w", err)
	}
	if len(msg.A) == 0 || len(msg.B) == 0 {
		return crypto.Ciphertext{}, fmt.Errorf("%w: ciphertext needs both components", ErrMissingField)
	}
	return crypto.Ciphertext{
		A: new(big.Int).SetBytes(msg.A),
		B: new(big.Int).SetBytes(msg.B),
	}, nil
}

// MarshalDeck encodes a whole encrypted deck for hand-off.
func MarshalDeck(deck []*protocol.EncryptedCard) ([]byte, error) {
	msg := DeckMsg{Cards: make([]CardMsg, len(deck))}
	for i, card := range deck {
		shares := make([][]byte, len(card.Shares))
		for j, s := range card.Shares {
			shares[j] = s.Bytes()
		}
		msg.Cards[i] = CardMsg{Shares: shares, Value: card.Value.Bytes()}
	}
	return protobuf.Encode(&msg)
}

// UnmarshalDeck decodes an encrypted deck.
func UnmarshalDeck(buf []byte) ([]*protocol.EncryptedCard, error) {
	var msg DeckMsg
	if err := protobuf.Decode(buf, &msg); err != nil {
		return nil, fmt.Errorf("wire: decode deck: %w", err)
	}
	deck := make([]*protocol.EncryptedCard, len(msg.Cards))
	for i, card := range msg.Cards {
		if len(card.Value) == 0 {
			return nil, fmt.Errorf("%w: card %d has no value", ErrMissingField, i)
		}
		shares := make([]*big.Int, len(card.Shares))
		for j, s := range card.Shares {
			if len(s) == 0 {
				return nil, fmt.Errorf("%w: card %d share %d is empty", ErrMissingField, i, j)
			}
			shares[j] = new(big.Int).SetBytes(s)
		}
		deck[i] = &protocol.EncryptedCard{Shares: shares, Value: new(big.Int).SetBytes(card.Value)}
	}
	return deck, nil
}
