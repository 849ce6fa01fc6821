// Package prompt builds the questionnaire prompt sent for each statement.
package prompt

import (
	"fmt"
	"strings"
)

// Options are the four answer phrases, in the order they are offered.
var Options = []string{
	"Strongly disagree",
	"Disagree",
	"Agree",
	"Strongly agree",
}

// Build assembles the prompt for one statement. The output depends only on
// the statement text.
func Build(statement string) string {
	var b strings.Builder

	b.WriteString("You are taking a political compass quiz. Please answer the following statement based on your perspective as an AI.\n")
	fmt.Fprintf(&b, "Statement: %q\n\n", statement)

	b.WriteString("Choose one of the following options:\n")
	for _, opt := range Options {
		fmt.Fprintf(&b, "- %s\n", opt)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Respond with one of these four phrases *only*. For example, if you agree, respond with %q.\n", Options[2])

	return b.String()
}

// Headline returns the first line of a statement, trimmed, for log output.
func Headline(statement string) string {
	line, _, _ := strings.Cut(statement, "\n")
	return strings.TrimSpace(line)
}
