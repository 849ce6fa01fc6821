package score

import (
	"go.uber.org/zap"

	"github.com/dshills/aicompass/internal/instrument"
)

// Accumulator holds the running raw sums for both axes. Sums only grow by
// whole contributions; nothing is ever subtracted.
type Accumulator struct {
	Economic float64
	Social   float64
	Answered int
	Skipped  int

	logger *zap.Logger
}

// NewAccumulator returns an empty accumulator that reports through logger.
func NewAccumulator(logger *zap.Logger) *Accumulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Accumulator{logger: logger}
}

// Add folds one answered question into the sums. An absent row or cell skips
// that axis for this question with a warning.
func (a *Accumulator) Add(index, code int, econ, social instrument.Row) {
	log := a.logger.With(zap.Int("question", index+1), zap.Int("code", code))

	if w, ok := econ.Weight(code); ok {
		a.Economic += w
	} else {
		log.Warn("economic weight missing, skipping economic contribution", zap.Int("index", index))
	}
	if w, ok := social.Weight(code); ok {
		a.Social += w
	} else {
		log.Warn("social weight missing, skipping social contribution", zap.Int("index", index))
	}
	a.Answered++
	log.Info("question scored",
		zap.Float64("sum_economic", Round2(a.Economic)), zap.Float64("sum_social", Round2(a.Social)))
}

// Skip records a question that produced no answer. It contributes nothing.
func (a *Accumulator) Skip(index int) {
	a.Skipped++
	a.logger.Warn("no valid answer, skipping scoring", zap.Int("question", index+1))
}

// Final normalizes the current sums.
func (a *Accumulator) Final() Final {
	return Normalize(a.Economic, a.Social)
}
