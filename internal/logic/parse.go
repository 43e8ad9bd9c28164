package logic

import "fmt"

// ParseError describes a failure to parse a prefix formula.
type ParseError struct {
	Position int
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Msg)
}

// ParseTerm converts a formula in prefix notation into a Term.
// '!' is the contradiction constant, a lowercase letter is a variable
// keyed by its character code, an uppercase letter is a metavariable,
// and any other character starts an implication: ">PQ" reads as
// "P implies Q". Trailing unconsumed input is an error.
func ParseTerm(input string) (Term, error) {
	p := &termParser{input: input}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.position < len(p.input) {
		return nil, &ParseError{
			Position: p.position,
			Msg:      fmt.Sprintf("trailing input %q", p.input[p.position:]),
		}
	}
	return t, nil
}

// MustParseTerm is like ParseTerm but panics on malformed input.
// It is used for the axiom table and in tests.
func MustParseTerm(input string) Term {
	t, err := ParseTerm(input)
	if err != nil {
		panic(err)
	}
	return t
}

// termParser scans the input left to right; each call to parse consumes
// exactly one complete term.
type termParser struct {
	input    string
	position int
}

func (p *termParser) parse() (Term, error) {
	if p.position >= len(p.input) {
		return nil, &ParseError{Position: p.position, Msg: "unexpected end of input"}
	}
	c := p.input[p.position]
	p.position++

	switch {
	case c == '!':
		return Contradiction{}, nil
	case c >= 'a' && c <= 'z':
		return Var{Code: int(c)}, nil
	case c >= 'A' && c <= 'Z':
		return MetaVar{Code: int(c)}, nil
	default:
		// Implication
		premise, err := p.parse()
		if err != nil {
			return nil, err
		}
		conclusion, err := p.parse()
		if err != nil {
			return nil, err
		}
		return Implication{Premise: premise, Conclusion: conclusion}, nil
	}
}
