package classify

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Agree", "agree"},
		{"  Strongly Disagree.  ", "strongly disagree"},
		{"AGREE!", "agree"},
		{"Agree..", "agree."},
		{"Agree…", "agree"},
		{"agree\n", "agree"},
		{"", ""},
		{".", ""},
		{"Agree+", "agree"},
		{"agree$", "agree"},
		{"agree~", "agree"},
		{"agree|", "agree"},
		{"agree^", "agree"},
		{"agree`", "agree"},
		{"agree=", "agree"},
		{"agree©", "agree©"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseExact(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"Strongly disagree", StronglyDisagree},
		{"disagree", Disagree},
		{"Agree.", Agree},
		{"STRONGLY AGREE!", StronglyAgree},
		{"  Disagree?  ", Disagree},
		{"Strongly agree;", StronglyAgree},
		{"Strongly agree+", StronglyAgree},
		{"Strongly disagree~", StronglyDisagree},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, kind, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != Exact {
				t.Errorf("kind = %s, want exact", kind)
			}
			if code != tt.want {
				t.Errorf("code = %s, want %s", code, tt.want)
			}
		})
	}
}

func TestParsePartial(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"verbose agree", "I would say agree, because it matters.", Agree},
		{"verbose disagree", "My answer: Disagree", Disagree},
		{"verbose strongly disagree", "As an AI I strongly disagree with this", StronglyDisagree},
		// "agree" precedes "strongly agree" in declaration order
		{"strongly agree inside prose", "I strongly agree with this", Agree},
		{"two phrases, earlier wins", "strongly disagree, though some agree", StronglyDisagree},
		{"disagree beats agree", "agree or disagree? disagree", Disagree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, kind, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != Partial {
				t.Errorf("kind = %s, want partial", kind)
			}
			if code != tt.want {
				t.Errorf("code = %s, want %s", code, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "I cannot answer that.", "Neutral", "agre"} {
		_, kind, err := Parse(in)
		if kind != NoMatch {
			t.Errorf("Parse(%q) kind = %s, want none", in, kind)
		}
		if !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidAnswer", in, err)
		}
	}
}

func TestCodeString(t *testing.T) {
	want := []string{"strongly disagree", "disagree", "agree", "strongly agree"}
	for i, c := range Codes() {
		if int(c) != i {
			t.Errorf("code %d out of order", i)
		}
		if c.String() != want[i] {
			t.Errorf("Code(%d).String() = %q, want %q", i, c.String(), want[i])
		}
	}
	if Code(4).Valid() || Code(-1).Valid() {
		t.Error("out-of-range codes must be invalid")
	}
	if Code(7).String() != "invalid" {
		t.Error("invalid code should stringify as invalid")
	}
}
