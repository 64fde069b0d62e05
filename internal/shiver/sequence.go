// Package shiver reconciles sequences containing missing coverage with the
// output of an external aligner that only understands bases and gaps.
package shiver

import "strings"

// GapChar is the alignment gap character, inserted and removed only by the
// aligner.
const GapChar = '-'

// MissingChar marks missing coverage: no read data at a position, as
// opposed to a deliberate gap.
const MissingChar = '?'

// Seq is a single named sequence. In ">B.FR.83.HXB2" FASTA its ID is
// "B.FR.83.HXB2"
type Seq struct {
	// ID of the sequence
	ID string

	// Seq is the sequence's characters: bases, gaps and missing coverage
	Seq string
}

// class is the kind of a single alignment character
type class int

const (
	// classMissing is the missing coverage character
	classMissing class = iota

	// classGap is the alignment gap character
	classGap

	// classBase is everything else: an actual base call
	classBase
)

// classOf returns the class of one alignment character
func classOf(c byte) class {
	switch c {
	case MissingChar:
		return classMissing
	case GapChar:
		return classGap
	default:
		return classBase
	}
}

// stripGaps removes every gap character from a sequence. Used to compare
// base content before and after an alignment
func stripGaps(seq string) string {
	return strings.ReplaceAll(seq, string(GapChar), "")
}
