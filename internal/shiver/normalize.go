package shiver

import "strings"

// propagateMissing absorbs gap runs bordering missing coverage into the
// missing coverage itself: a gap next to an uncovered region carries no
// more information than the region. Afterward every missing coverage run
// is maximal and borders only bases, which keeps run classification
// stable for the reconciliation step
func propagateMissing(seq string) string {
	runs := split(seq)

	var b strings.Builder
	b.Grow(len(seq))
	for i, r := range runs {
		c := r.class
		if c == classGap {
			if (i > 0 && runs[i-1].class == classMissing) ||
				(i+1 < len(runs) && runs[i+1].class == classMissing) {
				c = classMissing
			}
		}

		if c == classMissing {
			b.WriteString(strings.Repeat(string(MissingChar), len(r.chars)))
		} else {
			b.WriteString(r.chars)
		}
	}
	return b.String()
}

// project replaces missing coverage with gaps: the only form of the
// consensus the aligner is allowed to see
func project(seq string) string {
	return strings.ReplaceAll(seq, string(MissingChar), string(GapChar))
}
