// gridworld serves a turn-based grid world for multi-agent experiments.
//
// Usage:
//
//	server serve                 - Start the HTTP server
//
// Flags:
//
//	--config <path>  - YAML config file
//	--addr <addr>    - Listen address (overrides config)
//	--seed <value>   - RNG seed for reproducible attack targeting
//	--layout <path>  - World layout JSON (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagAddr   string
	flagSeed   int64
	flagLayout string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "gridworld - turn-based multi-agent world engine",
	Long: `gridworld runs a grid-addressed multi-agent world behind an HTTP API.

Agents move, attack, pick up items and eat under a per-turn action-point
budget; every call is traced into a journal.

Examples:
  server serve
  server serve --config configs/config.yaml
  server serve --addr :9090 --seed 42 --layout configs/layout.json`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = seed from time)")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "World layout JSON (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
