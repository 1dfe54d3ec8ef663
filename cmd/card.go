package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shoecard/card"
	"shoecard/catalog"
)

var cardCmd = &cobra.Command{
	Use:   "card <slug>",
	Short: "Print one rendered shoe card",
	Args:  cobra.ExactArgs(1),
	RunE:  runCard,
}

func init() {
	cardCmd.Flags().String("now", "", "Reference time in RFC3339 (default: current time)")
	cardCmd.Flags().Bool("json", false, "Print the card view as JSON instead of markup")
	rootCmd.AddCommand(cardCmd)
}

func runCard(cmd *cobra.Command, args []string) error {
	now := time.Now()
	if raw, _ := cmd.Flags().GetString("now"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		now = t
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	shoe, err := cat.BySlug(args[0])
	if err != nil {
		return err
	}
	view := card.Builder{CurrencySymbol: cfg.Display.CurrencySymbol}.Build(shoe, now)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	renderer, err := card.NewRenderer()
	if err != nil {
		return err
	}
	html, err := renderer.Render(view)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
