package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
)

var (
	listLimit    int
	showLast     bool
	exportFormat string
	exportOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled play sessions",
	Long:  `Display recent play sessions from the turn journal, newest first.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show the turns of a session",
	Long: `Display a journaled session: its metadata, a breakdown of where the
turns came from, and the full turn sequence.

Session IDs may be shortened to any unique prefix. Use --last to show the
most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export the turns of a session",
	Long: `Export the turn sequence of a session in text or JSON format.

Examples:
  cubeview history export --last
  cubeview history export <session_id> --format json
  cubeview history export <session_id> -o turns.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryExport,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its turns",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Number of sessions to list")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")

	historyCmd.AddCommand(historyExportCmd)
	historyExportCmd.Flags().BoolVar(&showLast, "last", false, "Export the most recent session")
	historyExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	historyExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	sessions, err := j.Sessions.List(listLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet. Run 'cubeview play' to start one.")
		return nil
	}

	fmt.Printf("%-8s  %-16s  %-10s  %6s  %s\n", "ID", "STARTED", "DURATION", "TURNS", "RESULT")
	fmt.Println(strings.Repeat("-", 56))

	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		result := "active"
		if s.EndedAt != nil {
			result = "unsolved"
			if s.SolvedAtEnd != nil && *s.SolvedAtEnd {
				result = "solved"
			}
		}

		fmt.Printf("%-8s  %-16s  %-10s  %6s  %s\n",
			s.SessionID[:8],
			humanize.Time(s.StartedAt),
			duration,
			humanize.Comma(int64(s.TurnCount)),
			result,
		)
	}

	return nil
}

// resolveSession finds the session named by args, or the latest with --last.
func resolveSession(repo *storage.SessionRepository, args []string) (*storage.Session, error) {
	if showLast {
		s, err := repo.GetLast()
		if err != nil {
			return nil, fmt.Errorf("failed to get latest session: %w", err)
		}
		if s == nil {
			return nil, fmt.Errorf("no sessions found")
		}
		return s, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("please provide a session ID or use --last")
	}

	s, err := repo.FindByPrefix(args[0])
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("session not found: %s", args[0])
	}
	return s, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	session, err := resolveSession(j.Sessions, args)
	if err != nil {
		return err
	}

	turnRepo := j.Turns
	turns, err := turnRepo.GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get turns: %w", err)
	}
	bySource, err := turnRepo.CountBySource(session.SessionID)
	if err != nil {
		return err
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()

	fmt.Printf("ID:       %s\n", session.SessionID)
	fmt.Printf("Started:  %s (%s)\n", session.StartedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(session.StartedAt))
	if session.EndedAt != nil {
		fmt.Printf("Ended:    %s\n", session.EndedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if session.DurationMs != nil {
		fmt.Printf("Duration: %s\n", formatDuration(time.Duration(*session.DurationMs)*time.Millisecond))
	}
	if session.ScrambleText != nil {
		fmt.Printf("Scramble: %s\n", *session.ScrambleText)
	}
	if session.SolvedAtEnd != nil {
		fmt.Printf("Solved:   %v\n", *session.SolvedAtEnd)
	}
	fmt.Println()

	fmt.Println("Turns")
	fmt.Println("-----")
	fmt.Printf("Total: %s\n", humanize.Comma(int64(len(turns))))
	sources := make([]string, 0, len(bySource))
	for source := range bySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		fmt.Printf("  %-9s %d\n", source+":", bySource[source])
	}
	fmt.Println()

	// Group turns into lines of ~60 chars
	var line string
	for i, t := range turns {
		if len(line)+len(t.Notation)+1 > 60 {
			fmt.Println(line)
			line = t.Notation
		} else if line == "" {
			line = t.Notation
		} else {
			line += " " + t.Notation
		}

		if i == len(turns)-1 && line != "" {
			fmt.Println(line)
		}
	}

	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	session, err := resolveSession(j.Sessions, args)
	if err != nil {
		return err
	}

	turns, err := j.Turns.GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get turns: %w", err)
	}
	if len(turns) == 0 {
		return fmt.Errorf("no turns found for session %s", session.SessionID)
	}

	output, err := formatTurns(turns, exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported %d turns to %s\n", len(turns), exportOutput)
	return nil
}

// turnJSON is the export shape of one journaled turn.
type turnJSON struct {
	TurnIndex int    `json:"turn_index"`
	TsMs      int64  `json:"ts_ms"`
	Axis      string `json:"axis"`
	Layer     int    `json:"layer"`
	Direction int    `json:"direction"`
	Notation  string `json:"notation"`
	Source    string `json:"source"`
}

func formatTurns(turns []storage.TurnRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		notations := make([]string, len(turns))
		for i, t := range turns {
			notations[i] = t.Notation
		}
		return strings.Join(notations, " "), nil

	case "json":
		out := make([]turnJSON, len(turns))
		for i, t := range turns {
			out[i] = turnJSON{
				TurnIndex: t.TurnIndex,
				TsMs:      t.TsMs,
				Axis:      t.Axis,
				Layer:     t.Layer,
				Direction: t.Direction,
				Notation:  t.Notation,
				Source:    t.Source,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	repo := j.Sessions
	session, err := repo.FindByPrefix(args[0])
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	if err := repo.Delete(session.SessionID); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s (%d turns)\n", session.SessionID, session.TurnCount)
	return nil
}

func openJournal() (*storage.Journal, error) {
	j, err := storage.OpenJournal(getDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return j, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
