// Package generator turns a header template into a finished configuration
// header by substituting freshly drawn secure random integers for the
// placeholder token on each variable's line.
package generator

import "strings"

// Placeholder is the literal token replaced by a generated value.
const Placeholder = "<YOUR_NUMBER>"

// Variable is one of the fixed #define names the generator fills in.
type Variable string

// The fixed variable set, in matching order.
const (
	PWMul      Variable = "PW_MUL"
	PWSeekMul  Variable = "PW_SEEK_MUL"
	PWInvMul   Variable = "PW_INV_MUL"
	DOMMul     Variable = "DOM_MUL"
	DOMSeekMul Variable = "DOM_SEEK_MUL"
	DOMInvMul  Variable = "DOM_INV_MUL"
	YRMul      Variable = "YR_MUL"
	YRSeekMul  Variable = "YR_SEEK_MUL"
	YRInvMul   Variable = "YR_INV_MUL"
)

//nolint:gochecknoglobals // Immutable table, only exposed through Variables
var variables = [...]Variable{
	PWMul, PWSeekMul, PWInvMul,
	DOMMul, DOMSeekMul, DOMInvMul,
	YRMul, YRSeekMul, YRInvMul,
}

// Variables returns the fixed variable set in matching order.
func Variables() []Variable {
	out := make([]Variable, len(variables))
	copy(out, variables[:])
	return out
}

// MatchVariable returns the first variable whose name occurs anywhere in
// line. A line is owned by at most one variable.
func MatchVariable(line string) (Variable, bool) {
	for _, v := range variables {
		if strings.Contains(line, string(v)) {
			return v, true
		}
	}
	return "", false
}

func (v Variable) String() string {
	return string(v)
}
