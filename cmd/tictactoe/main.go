// tictactoe is a two-player tic-tac-toe game for the terminal.
//
// Usage:
//
//	tictactoe                - Play in this terminal (same as play)
//	tictactoe play           - Play in this terminal
//	tictactoe serve          - Start SSH server for remote play
//	tictactoe config         - Print the default config file
//
// Global flags:
//
//	--config <path>  - Board size and colors YAML (default: search ~/.tictactoe, ./configs)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

var (
	// Global flags
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe for two players sharing one terminal",
	Long: `Tic-tac-toe for two players taking turns at the same terminal.
Click a cell to place the current mark, or use the keyboard.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the default config file

Examples:
  tictactoe
  tictactoe play --config ./big-board.yaml
  tictactoe serve --ssh :2222
  tictactoe config > ~/.tictactoe/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the --config flag through the config search order.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
