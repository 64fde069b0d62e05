package shiver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// fakeAligner returns a canned alignment without invoking mafft, recording
// the pair it was given
type fakeAligner struct {
	aligned []Seq
	err     error

	calls   int
	gotPair []Seq
}

func (f *fakeAligner) align(pair []Seq) ([]Seq, error) {
	f.calls++
	f.gotPair = pair

	if f.err != nil {
		return nil, f.err
	}
	return f.aligned, nil
}

func Test_realign(t *testing.T) {
	consensus := Seq{ID: "consensus", Seq: "AC??TTGT"}
	ref := Seq{ID: "ref", Seq: "ACGGTTGT"}
	others := []Seq{{ID: "other", Seq: "ACGGTTAGT"}}

	// mafft inserted one gap run inside the consensus's last base run
	fake := &fakeAligner{
		aligned: []Seq{
			{ID: "consensus", Seq: "AC--TT-GT"},
			{ID: "ref", Seq: "ACGGTT-GT"},
			{ID: "other", Seq: "ACGGTTAGT"},
		},
	}

	got, err := realign(consensus, ref, others, fake, false)
	if err != nil {
		t.Fatalf("realign() error = %v", err)
	}

	want := []Seq{
		{ID: "consensus", Seq: "AC??TT-GT"},
		{ID: "ref", Seq: "ACGGTT-GT"},
		{ID: "other", Seq: "ACGGTTAGT"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("realign() = %v, want %v", got, want)
	}

	// the aligner must never see missing coverage
	for _, s := range fake.gotPair {
		if strings.ContainsRune(s.Seq, MissingChar) {
			t.Errorf("realign() passed missing coverage to the aligner in %s", s.ID)
		}
	}
}

// the pair handed to the aligner is reference-first when swapping
func Test_realign_swap(t *testing.T) {
	consensus := Seq{ID: "consensus", Seq: "AC??TTGT"}
	ref := Seq{ID: "ref", Seq: "ACGGTTGT"}

	fake := &fakeAligner{
		aligned: []Seq{
			{ID: "ref", Seq: "ACGGTTGT"},
			{ID: "consensus", Seq: "AC--TTGT"},
		},
	}

	got, err := realign(consensus, ref, nil, fake, true)
	if err != nil {
		t.Fatalf("realign() error = %v", err)
	}

	if fake.gotPair[0].ID != "ref" || fake.gotPair[1].ID != "consensus" {
		t.Errorf("realign() aligner input order = %s, %s, want ref, consensus", fake.gotPair[0].ID, fake.gotPair[1].ID)
	}

	// the consensus keeps its position in the aligner's output
	if got[1].ID != "consensus" || got[1].Seq != "AC??TTGT" {
		t.Errorf("realign() output consensus = %v, want AC??TTGT second", got[1])
	}
}

func Test_realign_errors(t *testing.T) {
	consensus := Seq{ID: "consensus", Seq: "AC??TTGT"}
	ref := Seq{ID: "ref", Seq: "ACGGTTGT"}
	others := []Seq{{ID: "other", Seq: "ACGGTTAGT"}}

	identity := []Seq{
		{ID: "consensus", Seq: "AC--TTGT"},
		{ID: "ref", Seq: "ACGGTTGT"},
		{ID: "other", Seq: "ACGGTTAGT"},
	}

	type args struct {
		consensus Seq
		ref       Seq
		others    []Seq
		fake      *fakeAligner
	}
	tests := []struct {
		name      string
		args      args
		wantErr   error
		wantCalls int
	}{
		{
			"invalid pair stops before alignment",
			args{
				consensus: Seq{ID: "consensus", Seq: "AC-T"},
				ref:       Seq{ID: "ref", Seq: "AC-T"},
				others:    others,
				fake:      &fakeAligner{aligned: identity},
			},
			ErrFormat,
			0,
		},
		{
			"duplicate ID stops before alignment",
			args{
				consensus: consensus,
				ref:       ref,
				others:    []Seq{{ID: "consensus", Seq: "ACGT"}},
				fake:      &fakeAligner{aligned: identity},
			},
			ErrDuplicateID,
			0,
		},
		{
			"aligner failure",
			args{
				consensus: consensus,
				ref:       ref,
				others:    others,
				fake:      &fakeAligner{err: fmt.Errorf("%w: mafft exited with status 1", ErrAlignment)},
			},
			ErrAlignment,
			1,
		},
		{
			"a sequence went missing in the alignment",
			args{
				consensus: consensus,
				ref:       ref,
				others:    others,
				fake: &fakeAligner{aligned: []Seq{
					{ID: "consensus", Seq: "AC--TTGT"},
					{ID: "ref", Seq: "ACGGTTGT"},
				}},
			},
			ErrConsistency,
			1,
		},
		{
			"consensus bases changed across alignment",
			args{
				consensus: consensus,
				ref:       ref,
				others:    others,
				fake: &fakeAligner{aligned: []Seq{
					{ID: "consensus", Seq: "AC--TTGG"},
					{ID: "ref", Seq: "ACGGTTGT"},
					{ID: "other", Seq: "ACGGTTAGT"},
				}},
			},
			ErrConsistency,
			1,
		},
		{
			"consensus rearranged after alignment",
			args{
				consensus: Seq{ID: "consensus", Seq: "AC--TTGT"},
				ref:       ref,
				others:    others,
				fake: &fakeAligner{aligned: []Seq{
					{ID: "consensus", Seq: "ACTTGT--"},
					{ID: "ref", Seq: "ACGGTTGT"},
					{ID: "other", Seq: "ACGGTTAGT"},
				}},
			},
			ErrReconciliation,
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := realign(tt.args.consensus, tt.args.ref, tt.args.others, tt.args.fake, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("realign() error = %v, want %v", err, tt.wantErr)
			}
			if tt.args.fake.calls != tt.wantCalls {
				t.Errorf("realign() called the aligner %d times, want %d", tt.args.fake.calls, tt.wantCalls)
			}
		})
	}
}

// stripping gaps and missing coverage from the input consensus matches
// stripping gaps from the reconciled output consensus
func Test_realign_conservation(t *testing.T) {
	consensus := Seq{ID: "consensus", Seq: "??ACGTACGT"}
	ref := Seq{ID: "ref", Seq: "GGACGTACGT"}

	fake := &fakeAligner{
		aligned: []Seq{
			{ID: "consensus", Seq: "--AC-GTAC-GT"},
			{ID: "ref", Seq: "GGAC-GTAC-GT"},
		},
	}

	got, err := realign(consensus, ref, nil, fake, false)
	if err != nil {
		t.Fatalf("realign() error = %v", err)
	}

	before := stripGaps(project(consensus.Seq))
	after := stripGaps(project(got[0].Seq))
	if before != after {
		t.Errorf("realign() base content changed: %q before, %q after", before, after)
	}
}
