package shiver

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/magosil86/shiver/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// AlignToPair is the entry for `shiver align`: add sequences to a pairwise
// alignment of a consensus, containing missing coverage, and the reference
// it was mapped against
func AlignToPair(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		stderr.Fatal("failed: no pair alignment passed with -i")
	}

	add, err := cmd.Flags().GetString("add")
	if err != nil || add == "" {
		stderr.Fatal("failed: no sequences to add passed with -a")
	}

	out, _ := cmd.Flags().GetString("out")
	fragments, _ := cmd.Flags().GetBool("addfragments")
	swap, _ := cmd.Flags().GetBool("swap")

	execAlign(in, add, out, fragments, swap, config.New())
}

// execAlign reads the pair and the other sequences, aligns everything with
// mafft, and writes the new alignment with missing coverage restored in
// the consensus
func execAlign(in, add, out string, fragments, swap bool, conf config.Config) {
	pair, err := readFasta(in)
	if err != nil {
		stderr.Fatalf("failed to read the pair alignment at %s: %v", in, err)
	}
	if len(pair) != 2 {
		stderr.Fatalf(
			"failed: found %d sequences in %s, expected exactly two: the consensus then its reference",
			len(pair), in,
		)
	}

	others, err := readFasta(add)
	if err != nil {
		stderr.Fatalf("failed to read the sequences to add at %s: %v", add, err)
	}

	m := &mafftExec{
		others:    add,
		mafft:     conf.Mafft.Cmd,
		dir:       conf.TempDir,
		fragments: fragments,
	}

	aligned, err := realign(pair[0], pair[1], others, m, swap)
	if err != nil {
		stderr.Fatalf("failed: %v", err)
	}

	w := os.Stdout
	if out != "" {
		if w, err = os.Create(out); err != nil {
			stderr.Fatalf("failed to create the output file at %s: %v", out, err)
		}
		defer w.Close()
	}
	if err := writeFasta(w, aligned); err != nil {
		stderr.Fatalf("failed to write the output alignment: %v", err)
	}
}

// realign is the core pipeline: validate the pair, hide the consensus's
// missing coverage behind gaps, align, check the aligner kept its
// contract, and restore the missing coverage in the result.
//
// swap puts the reference before the consensus in the aligner input, so
// the output ordering becomes reference, consensus, then the added
// sequences (the aligner preserves its input order)
func realign(consensus, ref Seq, others []Seq, a aligner, swap bool) ([]Seq, error) {
	if err := validatePair(consensus, ref); err != nil {
		return nil, err
	}
	if err := checkUniqueIDs(append([]Seq{consensus, ref}, others...)); err != nil {
		return nil, err
	}

	// absorb gaps bordering missing coverage, then hide the missing
	// coverage from the aligner
	normalized := propagateMissing(consensus.Seq)
	projected := Seq{ID: consensus.ID, Seq: project(normalized)}

	pair := []Seq{projected, ref}
	if swap {
		pair = []Seq{ref, projected}
	}

	aligned, err := a.align(pair)
	if err != nil {
		return nil, err
	}

	// every ID in, exactly once, and nothing else out
	want := []string{consensus.ID, ref.ID}
	for _, s := range others {
		want = append(want, s.ID)
	}
	got := make([]string, 0, len(aligned))
	for _, s := range aligned {
		got = append(got, s.ID)
	}
	if err := compareIDs(got, want); err != nil {
		return nil, err
	}

	consensusAt := 0
	for i, s := range aligned {
		if s.ID == consensus.ID {
			consensusAt = i
		}
	}
	post := aligned[consensusAt].Seq

	// the aligner may only have inserted gaps
	if stripGaps(post) != stripGaps(projected.Seq) {
		return nil, fmt.Errorf(
			"%w: %s contains different bases before and after alignment",
			ErrConsistency, consensus.ID,
		)
	}

	restored, err := reconcile(normalized, post)
	if err != nil {
		return nil, err
	}

	aligned[consensusAt] = Seq{ID: consensus.ID, Seq: restored}
	return aligned, nil
}

// compareIDs errors unless got and want hold the same IDs, ignoring order
func compareIDs(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf(
			"%w: the aligner returned %d sequences, expected %d",
			ErrConsistency, len(got), len(want),
		)
	}

	sortedGot := append([]string{}, got...)
	sortedWant := append([]string{}, want...)
	sort.Strings(sortedGot)
	sort.Strings(sortedWant)

	for i := range sortedWant {
		if sortedGot[i] != sortedWant[i] {
			return fmt.Errorf(
				"%w: the aligner returned different sequence IDs than it was given",
				ErrConsistency,
			)
		}
	}
	return nil
}
