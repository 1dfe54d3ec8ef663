package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shoecard/config"
	"shoecard/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "shoecard",
	Short: "Sole & Ankle shoe card service",
	Long:  "Renders storefront shoe cards with their Sale / Just Released! badges.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to YAML config file")
	rootCmd.PersistentFlags().String("catalog", "", "Path to shoe catalog (overrides config)")
}

func initConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.LoadFromEnv(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override from flags
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		c.Catalog.Path = v
	}

	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	cfg = c
	return nil
}
