package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/colour"
)

// similarityCmd represents the similarity command
var similarityCmd = &cobra.Command{
	Use:   "similarity <palette> <palette>",
	Short: "Score how well one palette matches another",
	Long: `Score how well the first palette is covered by the second, from 0 to 100.

Each palette is a comma-separated list of hex colours. The score averages,
over the first palette's colours, how close each one's best match in the
second palette is. The measure is directional: a small palette can be fully
covered by a large one without the reverse holding.`,
	Example: `  paletta similarity "#FF5733,#3498DB" "#FF5733,#3498DB,#2ECC71"`,
	Args: cobra.ExactArgs(2),
	RunE: runSimilarity,
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	first, err := parseColorList(args[0])
	if err != nil {
		return err
	}
	second, err := parseColorList(args[1])
	if err != nil {
		return err
	}

	score := colour.BestMatchScore(first, second)
	fmt.Printf("%.1f\n", score)
	return nil
}
