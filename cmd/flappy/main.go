// flappy is a terminal rendition of the flap-between-the-pipes arcade game.
//
// Usage:
//
//	flappy                       - Play in this terminal
//	flappy play                  - Same as above
//	flappy serve                 - Start SSH server for remote play
//	flappy config show           - Print the effective configuration
//	flappy config validate <f>   - Check a configuration file
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 120)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap between the pipes in your terminal",
	Long: `Flappy is a terminal take on the classic one-button arcade game.
Flap to stay airborne, thread the gaps, and don't touch anything.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Show or validate configuration

Examples:
  flappy
  flappy play --sound bell
  flappy --seed 42 --fps 60
  flappy serve --ssh :2222
  flappy config validate ./my-flappy.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// The root command plays, so it accepts the play flags too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
