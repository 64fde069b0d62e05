package shiver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// fastaLineLength is the wrap width for written sequences
const fastaLineLength = 60

// whitespace is stripped from sequence lines. Unlike raw sequence files,
// the files this tool reads are alignments: gaps and missing coverage are
// kept, and case is preserved for mafft's --preservecase
var whitespace = regexp.MustCompile(`\s`)

// readFasta parses a FASTA file (by its path on the local fs) to Seqs
func readFasta(path string) (seqs []Seq, err error) {
	if !filepath.IsAbs(path) {
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}

	return parseFasta(path, string(dat))
}

// parseFasta reads multi-FASTA contents into Seqs
func parseFasta(path, contents string) (seqs []Seq, err error) {
	lines := strings.Split(contents, "\n")

	// find the headers
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)

			// the ID is the first whitespace separated field of the header
			id := strings.TrimSpace(line[1:])
			if fields := strings.Fields(id); len(fields) > 0 {
				id = fields[0]
			}
			ids = append(ids, id)
		}
	}

	// accumulate the sequences from between the headers
	var contentsBySeq []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		seqJoined := strings.Join(seqLines, "")
		contentsBySeq = append(contentsBySeq, whitespace.ReplaceAllString(seqJoined, ""))
	}

	for i, id := range ids {
		seqs = append(seqs, Seq{
			ID:  id,
			Seq: contentsBySeq[i],
		})
	}

	// opened and parsed the file but found nothing
	if len(seqs) < 1 {
		return nil, fmt.Errorf("failed to parse any sequences from %s", path)
	}

	return
}

// writeFasta writes seqs in FASTA format, wrapped at 60 characters
func writeFasta(w io.Writer, seqs []Seq) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintf(w, ">%s\n", s.ID); err != nil {
			return err
		}

		for i := 0; i < len(s.Seq); i += fastaLineLength {
			end := i + fastaLineLength
			if end > len(s.Seq) {
				end = len(s.Seq)
			}
			if _, err := fmt.Fprintln(w, s.Seq[i:end]); err != nil {
				return err
			}
		}
	}
	return nil
}
