package shiver

// run is a maximal block of consecutive characters sharing one class
type run struct {
	// class shared by every character in the run
	class class

	// chars of the run, verbatim from the sequence
	chars string
}

// split segments a sequence into runs of missing coverage, runs of gaps
// and runs of bases. Concatenating the returned runs' characters
// reproduces the sequence and no two neighboring runs share a class
func split(seq string) (runs []run) {
	start := 0
	for i := 1; i <= len(seq); i++ {
		if i == len(seq) || classOf(seq[i]) != classOf(seq[start]) {
			runs = append(runs, run{classOf(seq[start]), seq[start:i]})
			start = i
		}
	}
	return
}
