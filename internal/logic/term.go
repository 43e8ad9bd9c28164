package logic

import "fmt"

// Term represents a formula in the deduction system.
// A term is a variable, the contradiction constant, an implication, or a
// metavariable (used only inside axiom schemas).
type Term interface {
	isTerm()
	String() string
	Equal(other Term) bool
}

// Var represents an atomic proposition, identified by a character code.
type Var struct {
	Code int
}

func (Var) isTerm() {}
func (t Var) String() string {
	if t.Code >= 'a' && t.Code <= 'z' {
		return string(rune(t.Code))
	}
	return fmt.Sprintf("v%d", t.Code)
}

func (t Var) Equal(other Term) bool {
	if o, ok := other.(Var); ok {
		return t.Code == o.Code
	}
	return false
}

// Contradiction represents the falsity constant. It infers any formula
// through the ex-falso axiom.
type Contradiction struct{}

func (Contradiction) isTerm() {}
func (Contradiction) String() string {
	return "!"
}

func (Contradiction) Equal(other Term) bool {
	_, ok := other.(Contradiction)
	return ok
}

// Implication represents "premise implies conclusion".
type Implication struct {
	Premise    Term
	Conclusion Term
}

func (Implication) isTerm() {}
func (t Implication) String() string {
	return fmt.Sprintf("(%s) -> %s", t.Premise, t.Conclusion)
}

func (t Implication) Equal(other Term) bool {
	o, ok := other.(Implication)
	if !ok {
		return false
	}
	return t.Premise.Equal(o.Premise) && t.Conclusion.Equal(o.Conclusion)
}

// MetaVar represents a schema placeholder standing for an arbitrary term.
// Metavariables appear only inside axiom schemas; they are substituted
// away before a line enters a derivation trace.
type MetaVar struct {
	Code int
}

func (MetaVar) isTerm() {}
func (t MetaVar) String() string {
	if t.Code >= 'A' && t.Code <= 'Z' {
		return string(rune(t.Code))
	}
	return fmt.Sprintf("V%d", t.Code)
}

func (t MetaVar) Equal(other Term) bool {
	if o, ok := other.(MetaVar); ok {
		return t.Code == o.Code
	}
	return false
}

// Helper functions to construct terms

// NewVar creates a variable from its display letter.
func NewVar(c rune) Term {
	return Var{Code: int(c)}
}

// NewMetaVar creates a metavariable from its display letter.
func NewMetaVar(c rune) Term {
	return MetaVar{Code: int(c)}
}

// Imply creates an implication.
func Imply(premise, conclusion Term) Term {
	return Implication{Premise: premise, Conclusion: conclusion}
}

// SubstituteMeta returns a copy of t with every occurrence of the
// metavariable identified by code replaced by repl. Variables and the
// contradiction constant are returned unchanged; implications are
// substituted recursively on both sides.
func SubstituteMeta(t Term, code int, repl Term) Term {
	switch term := t.(type) {
	case Var, Contradiction:
		return term
	case Implication:
		return Implication{
			Premise:    SubstituteMeta(term.Premise, code, repl),
			Conclusion: SubstituteMeta(term.Conclusion, code, repl),
		}
	case MetaVar:
		if term.Code == code {
			return repl
		}
		return term
	default:
		panic(fmt.Sprintf("logic: unknown term variant %T", t))
	}
}

// ContainsMeta reports whether t contains any metavariable.
func ContainsMeta(t Term) bool {
	switch term := t.(type) {
	case Implication:
		return ContainsMeta(term.Premise) || ContainsMeta(term.Conclusion)
	case MetaVar:
		return true
	default:
		return false
	}
}
