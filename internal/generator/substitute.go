package generator

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Stats summarizes a substitution pass.
type Stats struct {
	Lines       int        // lines read, including a final unterminated one
	Substituted int        // lines where the placeholder was replaced
	Variables   []Variable // variables substituted, in order of first use
}

// Substitute copies r to w line by line. On every line owned by a variable
// each placeholder is replaced with that variable's value from table; all
// other bytes, line terminators included, pass through unchanged.
func Substitute(r io.Reader, w io.Writer, table *Table) (Stats, error) {
	var stats Stats
	seen := make(map[Variable]bool, len(variables))

	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, readErr
		}
		if line == "" {
			break
		}
		stats.Lines++

		if v, ok := MatchVariable(line); ok && strings.Contains(line, Placeholder) {
			if value, ok := table.Value(v); ok {
				line = strings.ReplaceAll(line, Placeholder, value)
				stats.Substituted++
				if !seen[v] {
					seen[v] = true
					stats.Variables = append(stats.Variables, v)
				}
			}
		}

		if _, err := io.WriteString(w, line); err != nil {
			return stats, err
		}
		if readErr != nil {
			break
		}
	}

	return stats, nil
}
