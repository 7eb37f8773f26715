package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_viewer"
)

const defaultScrambleLength = 20

var (
	scrambleRandom int
	scrambleSeed   int64
	scrambleUndo   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble [moves]",
	Short: "Apply moves to a solved cube and print the result",
	Long: `Apply a move sequence to a solved cube without opening the viewer and
print the unfolded net.

Examples:
  cubeview scramble "R U R' U'"
  cubeview scramble --random 25 --seed 7
  cubeview scramble "R U2 F'" --undo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleRandom, "random", 0, "Generate a random scramble of this many turns")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Seed for --random (default: time based)")
	scrambleCmd.Flags().BoolVar(&scrambleUndo, "undo", false, "Also apply the inverse sequence and show the cube returns to solved")
}

// randomScramble returns n random quarter turns, never turning the same face
// twice in a row.
func randomScramble(rng *rand.Rand, n int) []gocube.Move {
	moves := make([]gocube.Move, 0, n)
	for len(moves) < n {
		m := gocube.AllMoves[rng.Intn(len(gocube.AllMoves))]
		if len(moves) > 0 && moves[len(moves)-1].Face() == m.Face() {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// scrambleFromFlags parses notation, or generates n random turns when
// notation is empty.
func scrambleFromFlags(notation string, n int, rng *rand.Rand) ([]gocube.Move, error) {
	if strings.TrimSpace(notation) != "" {
		if n > 0 {
			return nil, fmt.Errorf("give either a scramble or --random, not both")
		}
		moves, err := gocube.ParseMoves(notation)
		if err != nil {
			return nil, fmt.Errorf("invalid scramble: %w", err)
		}
		return moves, nil
	}
	if n < 0 {
		return nil, fmt.Errorf("--random must not be negative")
	}
	return randomScramble(rng, n), nil
}

func runScramble(cmd *cobra.Command, args []string) error {
	notation := ""
	if len(args) > 0 {
		notation = args[0]
	}
	if notation == "" && scrambleRandom == 0 {
		scrambleRandom = defaultScrambleLength
	}

	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	moves, err := scrambleFromFlags(notation, scrambleRandom, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	cube := gocube.NewCube()
	if err := cube.Apply(moves...); err != nil {
		return err
	}

	fmt.Printf("Scramble: %s (%d turns)\n", gocube.FormatMoves(moves), len(moves))
	if notation == "" {
		fmt.Printf("Seed:     %d\n", seed)
	}
	fmt.Println()
	fmt.Print(cube.String())
	fmt.Printf("\nSolved: %v\n", cube.IsSolved())

	if scrambleUndo {
		inverse := gocube.InverseMoves(moves)
		if err := cube.Apply(inverse...); err != nil {
			return err
		}
		fmt.Printf("\nUndo:     %s\n", gocube.FormatMoves(inverse))
		fmt.Printf("Solved:   %v\n", cube.IsSolved())
	}

	return nil
}
