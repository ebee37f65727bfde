// Command mental-poker runs a full protocol round between simulated
// players on one machine: parameter generation, per-player keys, deck
// preparation, one shuffle per player and the reveal of every card. Deck
// hand-offs between players go through the wire codec, the same way they
// would travel between real peers.
package main

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/danyowoj/Mental-Poker/cards"
	"github.com/danyowoj/Mental-Poker/crypto"
	"github.com/danyowoj/Mental-Poker/protocol"
	"github.com/danyowoj/Mental-Poker/wire"
)

var (
	flagBits    int
	flagPlayers int
	flagSeed    int64
	flagHole    int
)

var rootCmd = &cobra.Command{
	Use:   "mental-poker",
	Short: "Run a dealer-free encrypted deck round between simulated players",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&flagBits, "bits", 512, "modulus size in bits (use 2048 or more for production)")
	rootCmd.Flags().IntVar(&flagPlayers, "players", 3, "number of players")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "deterministic seed; 0 uses a cryptographic source")
	rootCmd.Flags().IntVar(&flagHole, "hole", 2, "hole cards dealt to each player")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	rnd := crypto.NewSource()
	if flagSeed != 0 {
		rnd = crypto.NewSeededSource(flagSeed)
		logger.Warn("running with a deterministic seed, do not use for real games", "seed", flagSeed)
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Generating %d-bit safe prime group...", flagBits))
	params, err := crypto.GenerateParameters(flagBits, rnd)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()
	logger.Info("group parameters ready", "p_bits", params.P.BitLen(), "g", params.G.String())

	publicKeys := make([]*big.Int, flagPlayers)
	privateKeys := make([]*big.Int, flagPlayers)
	for i := 0; i < flagPlayers; i++ {
		kp := crypto.GenerateKeyPair(params, rnd)
		publicKeys[i] = kp.Y
		privateKeys[i] = kp.X
	}
	logger.Info("key pairs generated", "players", flagPlayers)

	session := protocol.New(params, rnd)
	deck, err := session.PrepareEncryptedDeck(publicKeys)
	if err != nil {
		return err
	}
	logger.Info("deck layered under every public key", "cards", len(deck), "layers", flagPlayers)

	// Each player receives the deck over the wire, shuffles and passes it on.
	for i := 0; i < flagPlayers; i++ {
		buf, err := wire.MarshalDeck(deck)
		if err != nil {
			return err
		}
		received, err := wire.UnmarshalDeck(buf)
		if err != nil {
			return err
		}
		deck, err = session.ShuffleEncryptedDeck(received, publicKeys[i])
		if err != nil {
			return err
		}
		logger.Info("player shuffled and re-randomized the deck", "player", i, "handoff_bytes", len(buf))
	}

	rows := pterm.TableData{{"Player", "Hole cards"}}
	for i := 0; i < flagPlayers; i++ {
		hole, rest, err := protocol.Draw(deck, flagHole)
		if err != nil {
			return err
		}
		deck = rest
		labels := make([]string, 0, len(hole))
		for _, card := range hole {
			label, err := session.DecryptCard(card, privateKeys)
			if err != nil {
				return err
			}
			labels = append(labels, label)
		}
		rows = append(rows, []string{fmt.Sprintf("player %d", i), fmt.Sprintf("%v", labels)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	// Reveal the rest of the deck to demonstrate set integrity.
	seen := map[string]bool{}
	for _, card := range deck {
		label, err := session.DecryptCard(card, privateKeys)
		if err != nil {
			return err
		}
		if seen[label] {
			return fmt.Errorf("card %s revealed twice, deck corrupted", label)
		}
		seen[label] = true
	}
	logger.Info("remaining deck verified", "cards", len(seen), "dealt", cards.DeckSize-len(seen))
	pterm.Success.Printfln("Full round complete: %d cards, every label unique", cards.DeckSize)
	return nil
}
