// Package tally implements the record counting behind the tally command.
package tally

import (
	"bufio"
	"io"
	"strings"

	"github.com/mibar/dictextra/pkg/dictextra"
)

// ReadRecords reads newline-delimited records from r, skipping blank lines.
// With words set every whitespace separated word is a record of its own.
func ReadRecords(r io.Reader, words bool) ([]string, error) {
	var records []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if words {
			records = append(records, strings.Fields(line)...)
			continue
		}
		records = append(records, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

type CountOptions struct {
	FoldCase bool
	// Min drops keys counted fewer times.
	Min  int
	Drop []string
	// Only restricts and orders the output.
	Only []string
}

// Count tallies records, then applies the filters of opts in the order
// Min, Drop, Only.
func Count(records []string, opts CountOptions) *dictextra.Dict[string, int] {
	if opts.FoldCase {
		records = lowerAll(records)
		opts.Drop = lowerAll(opts.Drop)
		opts.Only = lowerAll(opts.Only)
	}

	counts := dictextra.Frequencies(records)
	if opts.Min > 1 {
		counts = dictextra.RemoveWhen(func(_ string, n int) bool { return n < opts.Min }, counts)
	}
	if len(opts.Drop) > 0 {
		counts = dictextra.RemoveMany(dictextra.NewSet(opts.Drop...), counts)
	}
	if len(opts.Only) > 0 {
		counts = dictextra.KeepOnly(dictextra.NewSet(opts.Only...), counts)
	}
	return counts
}

// FirstOver returns the first key, in first-seen order, counted more than n
// times.
func FirstOver(counts *dictextra.Dict[string, int], n int) (string, int, bool) {
	return dictextra.Find(func(_ string, c int) bool { return c > n }, counts)
}

// Group buckets records by key, dropping the records key rejects.
func Group(records []string, key KeyFunc) *dictextra.Dict[string, []string] {
	return dictextra.FilterGroupBy(key, records)
}

func lowerAll(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
