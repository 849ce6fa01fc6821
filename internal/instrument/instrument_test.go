package instrument

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinDefault(t *testing.T) {
	in, err := LoadBuiltin(Default)
	require.NoError(t, err)

	assert.Equal(t, "political-compass", in.Name)
	assert.Equal(t, 62, in.FullLength)
	assert.Len(t, in.Questions, 62)
	assert.Len(t, in.Economic, 62)
	assert.Len(t, in.Social, 62)
	assert.Equal(t, 62, in.ActiveCount())
	assert.False(t, in.Short())
	assert.Empty(t, Validate(in))

	assert.Equal(t, Row{7, 5, 0, -2}, in.Economic[0])
	assert.Equal(t, Row{0, 0, 0, 0}, in.Social[0])
	assert.Equal(t, Row{-10, -8, 0, 1}, in.Economic[37])
	assert.Equal(t, Row{-6, -4, 0, 2}, in.Social[61])
	assert.True(t, strings.HasPrefix(in.Questions[0], "If economic globalisation is inevitable"))
	assert.Equal(t, "These days openness about sex has gone too far.", in.Questions[61])
}

func TestLoadBuiltinNotFound(t *testing.T) {
	_, err := LoadBuiltin("nonexistent")
	assert.Error(t, err)
}

func TestActiveCountUsesShortestTable(t *testing.T) {
	in := &Instrument{
		FullLength: 62,
		Questions:  []string{"a", "b", "c"},
		Economic:   []Row{{1, 2, 3, 4}, {1, 2, 3, 4}},
		Social:     []Row{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}},
	}
	assert.Equal(t, 2, in.ActiveCount())
	assert.True(t, in.Short())
}

func TestRowWeight(t *testing.T) {
	r := Row{7, 5, 0, -2}
	for code, want := range []float64{7, 5, 0, -2} {
		got, ok := r.Weight(code)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := r.Weight(4)
	assert.False(t, ok)
	_, ok = r.Weight(-1)
	assert.False(t, ok)
	_, ok = Row{1, 2}.Weight(3)
	assert.False(t, ok)
}

func TestRowLookup(t *testing.T) {
	in := &Instrument{Economic: []Row{{1, 2, 3, 4}, nil}}
	_, ok := in.EconomicRow(0)
	assert.True(t, ok)
	_, ok = in.EconomicRow(1)
	assert.False(t, ok, "nil row is absent")
	_, ok = in.EconomicRow(2)
	assert.False(t, ok)
	_, ok = in.SocialRow(0)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	data := []byte(`
name: mini
full_length: 62
questions:
  - "One"
  - "Two"
economic:
  - [7, 5, 0, -2]
  - [0, 0, 0]
social:
  - [0, 0, 0, 0]
`)
	in, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 1, in.ActiveCount())

	var paths []string
	for _, p := range Validate(in) {
		paths = append(paths, p.Path)
	}
	assert.ElementsMatch(t, []string{"tables", "questions", "economic[1]"}, paths)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("questions: [unterminated"))
	assert.Error(t, err)
}

func TestValidateEmpty(t *testing.T) {
	probs := Validate(&Instrument{})
	require.NotEmpty(t, probs)
	assert.Equal(t, "questions: no questions defined", probs[0].String())
}
