package generator

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"

	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// MaxTypoDistance is the largest edit distance at which an identifier is
// reported as a likely misspelling of a variable name.
const MaxTypoDistance = 2

var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Coverage lists the template lines that will receive a variable's value.
type Coverage struct {
	Variable Variable `json:"variable"`
	Lines    []int    `json:"lines"`
}

// NearMiss is an identifier that looks like a misspelled variable name.
type NearMiss struct {
	Line       int      `json:"line"`
	Identifier string   `json:"identifier"`
	Suggestion Variable `json:"suggestion"`
	Distance   int      `json:"distance"`
}

// Report is the outcome of checking a template. Line numbers are 1-based.
type Report struct {
	Template   string     `json:"template"`
	Coverage   []Coverage `json:"coverage"`
	Orphans    []int      `json:"orphans,omitempty"`
	Unfilled   []int      `json:"unfilled,omitempty"`
	NearMisses []NearMiss `json:"near_misses,omitempty"`
}

// Missing returns the variables no line will receive.
func (r *Report) Missing() []Variable {
	var out []Variable
	for _, c := range r.Coverage {
		if len(c.Lines) == 0 {
			out = append(out, c.Variable)
		}
	}
	return out
}

// Duplicated returns the variables whose value lands on more than one line.
func (r *Report) Duplicated() []Variable {
	var out []Variable
	for _, c := range r.Coverage {
		if len(c.Lines) > 1 {
			out = append(out, c.Variable)
		}
	}
	return out
}

// OK reports whether every variable is filled exactly once and no
// placeholder is left without an owning variable.
func (r *Report) OK() bool {
	return len(r.Missing()) == 0 && len(r.Duplicated()) == 0 && len(r.Orphans) == 0
}

// CheckFile checks the template at path. Nothing is written and no entropy
// is drawn.
func CheckFile(path string) (*Report, error) {
	// #nosec G304 -- template path is chosen by the invoking user
	f, err := os.Open(path)
	if err != nil {
		return nil, generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"path": path})
	}
	defer func() { _ = f.Close() }()

	report, err := Check(f)
	if err != nil {
		return nil, generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"path": path})
	}
	report.Template = path
	return report, nil
}

// Check reads a template and reports how its lines map onto the variable
// set, using the same matching rules as Substitute.
func Check(r io.Reader) (*Report, error) {
	index := make(map[Variable]int, len(variables))
	report := &Report{Coverage: make([]Coverage, len(variables))}
	for i, v := range variables {
		index[v] = i
		report.Coverage[i].Variable = v
	}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}
		if raw == "" {
			break
		}
		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		hasToken := strings.Contains(line, Placeholder)

		v, owned := MatchVariable(line)
		switch {
		case owned && hasToken:
			c := &report.Coverage[index[v]]
			c.Lines = append(c.Lines, lineNo)
		case owned:
			report.Unfilled = append(report.Unfilled, lineNo)
		case hasToken:
			report.Orphans = append(report.Orphans, lineNo)
		}

		report.NearMisses = append(report.NearMisses, nearMisses(lineNo, line)...)

		if readErr != nil {
			break
		}
	}

	return report, nil
}

// SuggestVariable returns the variable closest to ident, or false when none
// is within MaxTypoDistance. An exact name is not a near miss.
func SuggestVariable(ident string) (Variable, int, bool) {
	best := Variable("")
	bestDist := MaxTypoDistance + 1
	for _, v := range variables {
		if ident == string(v) {
			return "", 0, false
		}
		if d := levenshtein.ComputeDistance(strings.ToUpper(ident), string(v)); d < bestDist {
			best, bestDist = v, d
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestDist, true
}

func nearMisses(lineNo int, line string) []NearMiss {
	var out []NearMiss
	for _, ident := range identPattern.FindAllString(line, -1) {
		if !strings.Contains(ident, "_") {
			continue
		}
		if v, d, ok := SuggestVariable(ident); ok {
			out = append(out, NearMiss{
				Line:       lineNo,
				Identifier: ident,
				Suggestion: v,
				Distance:   d,
			})
		}
	}
	return out
}
