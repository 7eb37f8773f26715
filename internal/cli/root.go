// Package cli implements the command-line interface for cubeview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/recorder"
)

const version = "0.2.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeview",
	Short: "Interactive 3x3x3 cube in the terminal",
	Long: `cubeview - An interactive Rubik's Cube you turn with the mouse.

Press on a face and drag to turn its layer, drag outside the cube to orbit
the camera. Every committed turn is journaled to a local SQLite database so
play sessions can be listed and exported later.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_viewer/cubeview.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from the flag, then the state file.
// An empty result means the default path.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if sf, err := recorder.NewDefaultStateFile(); err == nil {
		return sf.DBPath()
	}
	return ""
}
