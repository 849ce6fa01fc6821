package instrument

import "fmt"

// Problem describes one defect in an instrument's tables. Problems are
// warnings: a run proceeds over the active question count regardless.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// Validate checks the instrument's shape and returns every problem found.
func Validate(in *Instrument) []Problem {
	var probs []Problem
	add := func(path, format string, args ...any) {
		probs = append(probs, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if len(in.Questions) == 0 {
		add("questions", "no questions defined")
	}
	if len(in.Economic) != len(in.Questions) || len(in.Social) != len(in.Questions) {
		add("tables", "length mismatch: %d questions, %d economic rows, %d social rows",
			len(in.Questions), len(in.Economic), len(in.Social))
	}
	if in.Short() {
		add("questions", "only %d of %d questions defined", len(in.Questions), in.FullLength)
	}
	for i, q := range in.Questions {
		if q == "" {
			add(fmt.Sprintf("questions[%d]", i), "empty statement")
		}
	}
	for i, r := range in.Economic {
		if len(r) != RowLen {
			add(fmt.Sprintf("economic[%d]", i), "row has %d weights, want %d", len(r), RowLen)
		}
	}
	for i, r := range in.Social {
		if len(r) != RowLen {
			add(fmt.Sprintf("social[%d]", i), "row has %d weights, want %d", len(r), RowLen)
		}
	}
	return probs
}
