// Package protocol sequences the mental poker deck lifecycle across all
// players of a session: layering every card under every player's public key
// in an agreed order, letting each player in turn re-randomize and permute
// the deck, and stripping the layers again in reverse order to reveal a
// card.
//
// The lifecycle of one deck is
//
//	unsealed -> layered -> shuffled -> (reveals)
//
// PrepareEncryptedDeck fixes the key order for the whole run. A reveal needs
// every player's private key for that card; no strict subset of players can
// learn a card's identity on its own.
//
// The protocol is strictly turn-based. A deck has exactly one owner at any
// time and is handed off whole between players; a failed pass has no
// well-defined intermediate state, so errors abort the run back to unsealed.
package protocol
