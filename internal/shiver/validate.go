package shiver

import "fmt"

// validatePair checks that the consensus and its reference form a usable
// pairwise alignment. mafft is never invoked when any check fails
func validatePair(consensus, ref Seq) error {
	if len(consensus.Seq) != len(ref.Seq) {
		return fmt.Errorf(
			"%w: %s and %s are not aligned, lengths differ (%d vs %d)",
			ErrFormat, consensus.ID, ref.ID, len(consensus.Seq), len(ref.Seq),
		)
	}

	for i := 0; i < len(ref.Seq); i++ {
		if ref.Seq[i] != GapChar {
			continue
		}
		if consensus.Seq[i] == GapChar {
			return fmt.Errorf(
				"%w: both sequences have a gap at position %d, such positions should be removed first",
				ErrFormat, i+1,
			)
		}
		if consensus.Seq[i] == MissingChar {
			return fmt.Errorf(
				"%w: consensus has missing coverage against a reference gap at position %d, such positions should be removed first",
				ErrFormat, i+1,
			)
		}
	}

	return nil
}

// checkUniqueIDs errors on the first sequence ID that appears twice
func checkUniqueIDs(seqs []Seq) error {
	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		if seen[s.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
