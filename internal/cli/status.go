package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/recorder"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show journal and preference information",
	Long:  `Display the journal database location, session counts, the active or last session, and the stored play preferences.`,
	RunE:  runStatus,
}

var (
	prefsFPS         int
	prefsTurnStep    float64
	prefsSensitivity float64
	prefsScaleRef    float64
	prefsNoJournal   bool
	prefsReset       bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the default play settings",
	Long: `Show the stored defaults for 'cubeview play', or change them with flags.

Examples:
  cubeview prefs
  cubeview prefs --fps 60 --turn-step 9
  cubeview prefs --reset
  cubeview prefs --db ~/cubes/journal.db`,
	RunE: runPrefs,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(prefsCmd)
	prefsCmd.Flags().IntVar(&prefsFPS, "fps", 0, "Frames per second")
	prefsCmd.Flags().Float64Var(&prefsTurnStep, "turn-step", 0, "Degrees a turn advances per frame")
	prefsCmd.Flags().Float64Var(&prefsSensitivity, "sensitivity", 0, "Orbit degrees per column dragged")
	prefsCmd.Flags().Float64Var(&prefsScaleRef, "scale-ref", 0, "Viewport size at which the cube is drawn at scale 1")
	prefsCmd.Flags().BoolVar(&prefsNoJournal, "no-journal", false, "Disable the turn journal by default")
	prefsCmd.Flags().BoolVar(&prefsReset, "reset", false, "Restore all defaults")
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Load state file
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	state := stateFile.State()

	fmt.Println("cubeview Status")
	fmt.Println("===============")
	fmt.Println()

	j, err := openJournal()
	if err == nil {
		defer j.Close()
		fmt.Printf("Database: %s\n", j.Path())
		v, _ := j.SchemaVersion()
		fmt.Printf("Schema:   v%d\n", v)

		sessions, _ := j.Sessions.List(1_000_000)
		turns := 0
		for _, s := range sessions {
			turns += s.TurnCount
		}
		fmt.Printf("Sessions: %s (%s turns)\n", humanize.Comma(int64(len(sessions))), humanize.Comma(int64(turns)))
		if len(sessions) > 0 {
			fmt.Printf("Latest:   %s, %s\n", sessions[0].SessionID[:8], humanize.Time(sessions[0].StartedAt))
		}
	} else {
		fmt.Printf("Database error: %v\n", err)
	}

	fmt.Println()

	if state.ActiveSessionID != "" {
		fmt.Printf("Active session: %s\n", state.ActiveSessionID)
		fmt.Println("  (a play run is open, or the last one did not exit cleanly)")
	} else if state.LastSessionID != "" {
		fmt.Printf("Last session: %s\n", state.LastSessionID)
	} else {
		fmt.Println("No session history")
	}

	fmt.Println()
	printPrefs(stateFile.Prefs())
	fmt.Printf("\nState file: %s\n", stateFile.Path())

	return nil
}

func printPrefs(p recorder.Prefs) {
	fmt.Println("Play defaults")
	fmt.Println("-------------")
	fmt.Printf("fps:         %d\n", p.FPS)
	fmt.Printf("turn-step:   %g°\n", p.TurnStep)
	fmt.Printf("sensitivity: %g°/col\n", p.Sensitivity)
	fmt.Printf("scale-ref:   %g\n", p.ReferenceSize)
	fmt.Printf("journal:     %v\n", !p.NoJournal)
}

func runPrefs(cmd *cobra.Command, args []string) error {
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	p := stateFile.State().Prefs
	if prefsReset {
		p = recorder.Prefs{}
	}

	flags := cmd.Flags()
	changed := prefsReset
	if flags.Changed("db") {
		if err := stateFile.SetDBPath(dbPath); err != nil {
			return err
		}
		fmt.Printf("Database path saved: %s\n", dbPath)
	}
	if flags.Changed("fps") {
		p.FPS, changed = prefsFPS, true
	}
	if flags.Changed("turn-step") {
		p.TurnStep, changed = prefsTurnStep, true
	}
	if flags.Changed("sensitivity") {
		p.Sensitivity, changed = prefsSensitivity, true
	}
	if flags.Changed("scale-ref") {
		p.ReferenceSize, changed = prefsScaleRef, true
	}
	if flags.Changed("no-journal") {
		p.NoJournal, changed = prefsNoJournal, true
	}

	if changed {
		if err := stateFile.SetPrefs(p); err != nil {
			return err
		}
		fmt.Println("Saved.")
		fmt.Println()
	}

	if path := stateFile.DBPath(); path != "" {
		fmt.Printf("Database path: %s\n", path)
	}
	printPrefs(p.WithDefaults())
	return nil
}
