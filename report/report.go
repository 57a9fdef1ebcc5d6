// Package report renders algorithm results for the console. It is a
// presentation layer only: the engine hands over structured result values
// and this package decides how they look, so callers that want different
// formatting can swap it out without touching the simulation.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qsimlab/qsim/qsim"
)

const dividerWidth = 60

// Lipgloss styles for the report sections.
var (
	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	headingStyle = lipgloss.NewStyle().
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	standoutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3"))

	confirmedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)

func divider() string {
	return dividerStyle.Render(strings.Repeat("-", dividerWidth))
}

func selfCheck(confirmed bool) string {
	if confirmed {
		return confirmedStyle.Render("(confirmed)")
	}
	return errorStyle.Render("(error)")
}

// stateTable lists every basis state of the final vector with its signed
// real amplitude. Rows whose index is flagged get a marker suffix.
func stateTable(amps []complex128, labelWidth, flagged int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Combined state:"))
	b.WriteByte('\n')
	for i, a := range amps {
		label := labelStyle.Render(fmt.Sprintf("|%0*b>", labelWidth, i))
		line := fmt.Sprintf("%s % .8f", label, real(a))
		if i == flagged {
			line = standoutStyle.Render(line + " *****")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Grover renders a Grover search result: the full final state with the
// standout row flagged, the run parameters, and the decoded position with
// its self-check suffix.
func Grover(res qsim.GroverResult) string {
	var b strings.Builder
	b.WriteString(divider())
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Run %s\n", res.RunID))
	b.WriteString(stateTable(res.Amplitudes, res.DataQubits+1, res.Result*2))
	b.WriteString(divider())
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Input string             : %s\n", res.Input))
	b.WriteString(fmt.Sprintf("Actual position (decimal): %d of %d\n", res.Needle, len(res.Input)-1))
	b.WriteString(fmt.Sprintf("Actual position (binary) : %0*b\n", res.DataQubits, res.Needle))
	b.WriteString(fmt.Sprintf("Iterations required      : %d\n", res.Iterations))
	b.WriteString(fmt.Sprintf("Qubits required          : %d (+1 control)\n", res.DataQubits))
	b.WriteString(fmt.Sprintf("Standout amplitude       : % .8f\n", real(res.Standout)))
	b.WriteString(fmt.Sprintf("Calculated position      : %d %s\n", res.Result, selfCheck(res.Confirmed)))
	b.WriteString(divider())
	b.WriteByte('\n')
	return b.String()
}

// Deutsch renders a Deutsch result: the 4-state final vector, the two
// partition probabilities, and the constant/balanced interpretation with
// its self-check suffix.
func Deutsch(res qsim.DeutschResult) string {
	var b strings.Builder
	b.WriteString(divider())
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Run %s\n", res.RunID))
	b.WriteString(stateTable(res.Amplitudes, 2, -1))
	b.WriteString(divider())
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Probability of measuring |00> or |01>: %.6f\n", res.ProbZero))
	b.WriteString(fmt.Sprintf("Probability of measuring |10> or |11>: %.6f\n", res.ProbRest))
	b.WriteString(fmt.Sprintf("Input         : %s\n", res.Input))
	b.WriteString(interpretation(res))
	b.WriteString(divider())
	b.WriteByte('\n')
	return b.String()
}

// DeutschJozsa renders a Deutsch-Jozsa result: the full final state, the
// probability of the all-zero data partition, and the interpretation with
// its self-check suffix.
func DeutschJozsa(res qsim.DeutschResult) string {
	zeros := strings.Repeat("0", res.DataQubits)
	var b strings.Builder
	b.WriteString(divider())
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Run %s\n", res.RunID))
	b.WriteString(stateTable(res.Amplitudes, res.DataQubits+1, -1))
	b.WriteString(divider())
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Probability of |%s0> or |%s1>: %.6f\n", zeros, zeros, res.ProbZero))
	b.WriteString(fmt.Sprintf("Input         : %s\n", res.Input))
	b.WriteString(interpretation(res))
	b.WriteString(divider())
	b.WriteByte('\n')
	return b.String()
}

func interpretation(res qsim.DeutschResult) string {
	qubit := "|0>"
	if res.Verdict == qsim.Balanced {
		qubit = "|1>"
	}
	return fmt.Sprintf("Interpretation: %s (data register measured in state %s) %s\n",
		res.Verdict, qubit, selfCheck(res.Confirmed))
}
