package cmd

import (
	"github.com/magosil86/shiver/internal/shiver"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// alignCmd adds sequences to a consensus/reference pair alignment in which
// the consensus contains missing coverage
var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align more sequences to a consensus/reference pair with missing coverage",
	Long: `Aligns more sequences to a pairwise alignment in which the first
sequence contains missing coverage: the "?" character. The pairwise
alignment is nominally the consensus (called from mapped reads) and the
reference used for mapping, in that order.

Alignment is performed using mafft; mafft does not know what missing
coverage is. Missing coverage is replaced by gaps, everything is realigned,
the consensus fragments after alignment (which in general contain new gaps)
are matched with those before, and the appropriate gaps are replaced by
missing coverage again.`,
	Run: shiver.AlignToPair,
}

// set flags
func init() {
	alignCmd.Flags().StringP("in", "i", "", "Input pair alignment: the consensus with missing coverage, then its reference <FASTA>")
	alignCmd.Flags().StringP("add", "a", "", "Sequences to add to the pair alignment <FASTA>")
	alignCmd.Flags().StringP("out", "o", "", "Output file name for the new alignment (default stdout)")
	alignCmd.Flags().BoolP("addfragments", "F", false, "Call mafft with --addfragments instead of --add")
	alignCmd.Flags().BoolP("swap", "S", false, "Swap the consensus and the reference in the output")
	alignCmd.Flags().String("mafft", "mafft", "The command required to invoke mafft")

	// Bind the mafft command to viper
	viper.BindPFlag("mafft.cmd", alignCmd.Flags().Lookup("mafft"))

	rootCmd.AddCommand(alignCmd)
}
