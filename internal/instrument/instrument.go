// Package instrument loads the embedded questionnaire: statement texts and the
// two per-question coefficient tables.
package instrument

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Default is the name of the built-in political compass instrument.
const Default = "political-compass"

// RowLen is the number of weights in a coefficient row, one per response code.
const RowLen = 4

// Row holds the weights a question contributes to one axis, indexed by
// response code.
type Row []float64

// Weight returns the weight for code, or false when the cell is absent.
func (r Row) Weight(code int) (float64, bool) {
	if code < 0 || code >= len(r) {
		return 0, false
	}
	return r[code], true
}

// Instrument is a questionnaire with its economic and social coefficient
// tables. The three slices are parallel by index.
type Instrument struct {
	Name        string   `yaml:"name"`
	Version     int      `yaml:"version"`
	Description string   `yaml:"description"`
	FullLength  int      `yaml:"full_length"`
	Questions   []string `yaml:"questions"`
	Economic    []Row    `yaml:"economic"`
	Social      []Row    `yaml:"social"`
}

// LoadBuiltin loads a built-in instrument by name.
func LoadBuiltin(name string) (*Instrument, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("instrument.LoadBuiltin: unknown instrument %q: %w", name, err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("instrument.LoadBuiltin: %q: %w", name, err)
	}
	return inst, nil
}

// Parse decodes an instrument from YAML.
func Parse(data []byte) (*Instrument, error) {
	var inst Instrument
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &inst, nil
}

// ActiveCount is the number of questions that can be scored: the shortest of
// the three parallel tables.
func (in *Instrument) ActiveCount() int {
	return min(len(in.Questions), len(in.Economic), len(in.Social))
}

// Short reports whether fewer questions are defined than the instrument was
// calibrated for.
func (in *Instrument) Short() bool {
	return in.FullLength > 0 && len(in.Questions) < in.FullLength
}

// EconomicRow returns the economic row for question index i, if present.
func (in *Instrument) EconomicRow(i int) (Row, bool) {
	return rowAt(in.Economic, i)
}

// SocialRow returns the social row for question index i, if present.
func (in *Instrument) SocialRow(i int) (Row, bool) {
	return rowAt(in.Social, i)
}

func rowAt(rows []Row, i int) (Row, bool) {
	if i < 0 || i >= len(rows) || rows[i] == nil {
		return nil, false
	}
	return rows[i], true
}
