package shiver

import (
	"errors"
	"testing"
)

// a mafft binary that can't be executed surfaces as an alignment failure
func Test_mafftExec_align_badBinary(t *testing.T) {
	m := &mafftExec{
		others: "others.fasta",
		mafft:  "mafft-binary-that-does-not-exist",
		dir:    t.TempDir(),
	}

	pair := []Seq{
		{ID: "consensus", Seq: "AC--TTGT"},
		{ID: "ref", Seq: "ACGGTTGT"},
	}

	if _, err := m.align(pair); !errors.Is(err, ErrAlignment) {
		t.Errorf("align() error = %v, want an alignment failure", err)
	}
}
