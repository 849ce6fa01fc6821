// Package classify turns free-text model answers into ordinal response codes.
package classify

// Code is an ordinal response code.
type Code int

const (
	StronglyDisagree Code = iota
	Disagree
	Agree
	StronglyAgree
)

// phrases are the canonical answers in declaration order. Partial matching
// scans them in this order and the first hit wins.
var phrases = [...]string{
	StronglyDisagree: "strongly disagree",
	Disagree:         "disagree",
	Agree:            "agree",
	StronglyAgree:    "strongly agree",
}

func (c Code) Valid() bool {
	return c >= StronglyDisagree && c <= StronglyAgree
}

// String returns the canonical lowercase phrase.
func (c Code) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return phrases[c]
}

// Codes returns every code in declaration order.
func Codes() []Code {
	return []Code{StronglyDisagree, Disagree, Agree, StronglyAgree}
}
