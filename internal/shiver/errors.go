package shiver

import "errors"

// Every failure the pipeline detects is fatal for the whole invocation:
// none of the errors below is ever caught and retried
var (
	// ErrFormat is a malformed input pair: wrong sequence count, a length
	// mismatch or a forbidden column pattern
	ErrFormat = errors.New("bad input alignment")

	// ErrDuplicateID is a sequence ID used more than once across the pair
	// and the sequences being added
	ErrDuplicateID = errors.New("duplicate sequence ID")

	// ErrAlignment is a mafft invocation that did not complete
	ErrAlignment = errors.New("alignment failed")

	// ErrConsistency is an aligner result with the wrong set of sequence
	// IDs or with changed consensus bases
	ErrConsistency = errors.New("inconsistent alignment result")

	// ErrReconciliation is a pre/post alignment run pair that violates the
	// expected class mapping, or a base fragment that fails to match
	ErrReconciliation = errors.New("reconciliation failed")

	// ErrInvariant is a failed post-condition on the rebuilt consensus
	ErrInvariant = errors.New("reconciled consensus invariant violated")
)
