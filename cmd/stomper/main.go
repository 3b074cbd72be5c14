// stomper is a terminal platformer: jump on enemies to clear the field,
// avoid touching them from the side.
//
// Usage:
//
//	stomper list              - List available game modes
//	stomper play [mode]       - Play a mode (default: stomper)
//	stomper serve             - Start SSH server for remote play
//	stomper scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stomper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/arcadelab/stomper/internal/games/stomper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stomper",
	Short: "Stomper - A terminal platformer",
	Long: `Stomper is a terminal platformer. Jump on enemies to stomp them and
clear the field; touching one from the side ends the run.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  stomper list
  stomper play
  stomper play stomper_endless
  stomper serve --ssh :2222
  stomper scores stomper`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stomper/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
