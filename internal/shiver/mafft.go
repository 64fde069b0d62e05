package shiver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// aligner adds sequences to a pairwise alignment. The real implementation
// shells out to mafft; tests swap in a fake that injects specific
// gap-insertion patterns
type aligner interface {
	// align aligns the pair (gap-only: no missing coverage) together with
	// the additional sequences and returns every sequence in the new
	// alignment
	align(pair []Seq) ([]Seq, error)
}

// mafftExec is a small utility struct for executing mafft on a pair
// alignment plus a file of sequences to add
type mafftExec struct {
	// the path to the FASTA file with the sequences to add
	others string

	// the path to the mafft executable
	mafft string

	// the directory to hold the input and output files
	dir string

	// fragments aligns the added sequences against the pair profile with
	// --addfragments instead of --add
	fragments bool
}

// align writes the pair to an input FASTA file, runs mafft with the
// sequences to add, and parses the resulting alignment.
//
// mafft runs with --preservecase, so base case survives the round trip,
// and --quiet, so its progress chatter stays off stderr
func (m *mafftExec) align(pair []Seq) ([]Seq, error) {
	in := filepath.Join(m.dir, "shiver.mafft.input.fasta")
	out := filepath.Join(m.dir, "shiver.mafft.output.fasta")

	inFile, err := os.Create(in)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create mafft input file: %v", ErrAlignment, err)
	}
	defer os.Remove(in)

	if err := writeFasta(inFile, pair); err != nil {
		inFile.Close()
		return nil, fmt.Errorf("%w: failed to write mafft input file: %v", ErrAlignment, err)
	}
	if err := inFile.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to write mafft input file: %v", ErrAlignment, err)
	}

	addOption := "--add"
	if m.fragments {
		addOption = "--addfragments"
	}

	outFile, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create mafft output file: %v", ErrAlignment, err)
	}
	defer os.Remove(out)

	// mafft writes the new alignment to stdout
	mafftCmd := exec.Command(m.mafft, "--quiet", "--preservecase", addOption, m.others, in)
	mafftCmd.Stdout = outFile

	var mafftStderr strings.Builder
	mafftCmd.Stderr = &mafftStderr

	if err := mafftCmd.Run(); err != nil {
		outFile.Close()
		return nil, fmt.Errorf("%w: %v: %s", ErrAlignment, err, strings.TrimSpace(mafftStderr.String()))
	}
	if err := outFile.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to write mafft output file: %v", ErrAlignment, err)
	}

	aligned, err := readFasta(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlignment, err)
	}

	return aligned, nil
}
