package shiver

import (
	"fmt"
	"strings"
)

// reconcile rebuilds the post-alignment consensus with its missing
// coverage restored.
//
// pre is the normalized pre-alignment consensus: bases, gaps and missing
// coverage. post is the same sequence after alignment: bases and gaps
// only, possibly with new gap runs inserted anywhere. The aligner never
// saw the missing coverage, so the walk below matches pre runs against
// post runs to decide which post-alignment gaps were really missing
// coverage:
//
//  1. a gap or missing coverage run maps to exactly one post-alignment gap
//     run. It may have grown to accommodate an insertion elsewhere in the
//     alignment: keep the new length but the original character
//  2. a base run either survives untouched or is chopped up by newly
//     inserted gap runs. Post runs are consumed until their base count
//     reaches the pre run's length, then the bases must match exactly
//
// The output has post's length and gap placement, with missing coverage
// wherever pre had it
func reconcile(pre, post string) (string, error) {
	preRuns := split(pre)
	postRuns := split(post)

	var b strings.Builder
	b.Grow(len(post))

	p := 0 // cursor into postRuns
	for _, preRun := range preRuns {
		if p >= len(postRuns) {
			return "", fmt.Errorf("%w: ran out of post-alignment runs", ErrReconciliation)
		}

		if preRun.class != classBase {
			if postRuns[p].class != classGap {
				return "", fmt.Errorf(
					"%w: gap or missing coverage became something other than a gap after alignment",
					ErrReconciliation,
				)
			}
			b.WriteString(strings.Repeat(string(preRun.chars[0]), len(postRuns[p].chars)))
			p++
			continue
		}

		if postRuns[p].class != classBase {
			return "", fmt.Errorf(
				"%w: bases became something other than bases after alignment",
				ErrReconciliation,
			)
		}

		var fragment strings.Builder
		bases := 0
		for bases < len(preRun.chars) {
			if p >= len(postRuns) {
				return "", fmt.Errorf("%w: ran out of post-alignment runs mid-fragment", ErrReconciliation)
			}
			r := postRuns[p]
			fragment.WriteString(r.chars)
			if r.class == classBase {
				bases += len(r.chars)
			}
			p++
		}

		joined := fragment.String()
		if stripGaps(joined) != preRun.chars {
			return "", fmt.Errorf(
				"%w: fragment mismatch, unable to match %q to the pre-alignment fragment %q",
				ErrReconciliation, joined, preRun.chars,
			)
		}
		b.WriteString(joined)
	}

	if p != len(postRuns) {
		return "", fmt.Errorf("%w: %d post-alignment runs left over", ErrReconciliation, len(postRuns)-p)
	}

	out := b.String()
	if project(out) != post {
		return "", fmt.Errorf(
			"%w: replacing missing coverage with gaps does not reproduce the post-alignment consensus",
			ErrInvariant,
		)
	}
	if strings.Contains(out, string(MissingChar)+string(GapChar)) ||
		strings.Contains(out, string(GapChar)+string(MissingChar)) {
		return "", fmt.Errorf("%w: missing coverage borders a gap in the output", ErrInvariant)
	}

	return out, nil
}
