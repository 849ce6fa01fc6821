// Package quiz runs the questionnaire end to end: ask every active question,
// fold the answered ones into the accumulator, and normalize.
package quiz

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/aicompass/internal/classify"
	"github.com/dshills/aicompass/internal/instrument"
	"github.com/dshills/aicompass/internal/score"
)

// Answerer resolves one statement to a response code.
type Answerer interface {
	Classify(ctx context.Context, statement string, number int) (classify.Answer, error)
}

// Result is the outcome of a full run.
type Result struct {
	Processed   int
	Answers     []classify.Answer
	SumEconomic float64
	SumSocial   float64
	Final       score.Final
}

// Answered returns the number of questions that produced a code.
func (r *Result) Answered() int {
	n := 0
	for _, a := range r.Answers {
		if a.Answered {
			n++
		}
	}
	return n
}

// Runner drives one questionnaire through an Answerer.
type Runner struct {
	Instrument *instrument.Instrument
	Answerer   Answerer
	Logger     *zap.Logger
}

// Run asks every active question in order, one at a time. Per-question
// failures are contained; only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	in := r.Instrument

	for _, p := range instrument.Validate(in) {
		log.Warn("instrument problem", zap.String("path", p.Path), zap.String("problem", p.Message))
	}

	n := in.ActiveCount()
	log.Info("starting questionnaire", zap.String("instrument", in.Name), zap.Int("questions", n))
	if in.Short() {
		log.Warn("questionnaire is shorter than the full instrument; scores will drift toward the calibration offsets",
			zap.Int("defined", len(in.Questions)), zap.Int("full_length", in.FullLength))
	}

	acc := score.NewAccumulator(log)
	res := &Result{Processed: n, Answers: make([]classify.Answer, 0, n)}

	for i := 0; i < n; i++ {
		ans, err := r.Answerer.Classify(ctx, in.Questions[i], i+1)
		if err != nil {
			return nil, fmt.Errorf("quiz: question %d: %w", i+1, err)
		}
		res.Answers = append(res.Answers, ans)

		if !ans.Answered {
			acc.Skip(i)
			continue
		}
		econ, _ := in.EconomicRow(i)
		social, _ := in.SocialRow(i)
		acc.Add(i, int(ans.Code), econ, social)
	}

	res.SumEconomic = acc.Economic
	res.SumSocial = acc.Social
	res.Final = acc.Final()
	log.Info("questionnaire complete",
		zap.Int("answered", acc.Answered), zap.Int("skipped", acc.Skipped),
		zap.Float64("economic", res.Final.Economic), zap.Float64("social", res.Final.Social))
	return res, nil
}
