package logic

import "fmt"

// Inference is a single proof step: an axiom instantiation or an
// application of modus ponens. String returns the provenance text shown
// next to the derived line in a report.
type Inference interface {
	isInference()
	String() string
}

// AxiomInstantiation instantiates an axiom schema by substituting the
// metavariables A, B and C (in that order) with Terms[0], Terms[1] and
// Terms[2].
type AxiomInstantiation struct {
	Index int
	Terms [3]Term
}

func (AxiomInstantiation) isInference() {}
func (s AxiomInstantiation) String() string {
	if s.Index < 0 || s.Index >= AxiomCount {
		return fmt.Sprintf("Axiom %d (unknown)", s.Index)
	}
	return fmt.Sprintf("Axiom %d %s; terms A = %s, B = %s, C = %s",
		s.Index, Axiom(s.Index), termOrBlank(s.Terms[0]), termOrBlank(s.Terms[1]), termOrBlank(s.Terms[2]))
}

func termOrBlank(t Term) string {
	if t == nil {
		return "_"
	}
	return t.String()
}

// ModusPonens derives the conclusion of a previously derived implication
// whose premise was also previously derived. Both fields are indices into
// the derivation trace and must reference lines strictly earlier than the
// current one.
type ModusPonens struct {
	Implication int
	Premise     int
}

func (ModusPonens) isInference() {}
func (s ModusPonens) String() string {
	return fmt.Sprintf("Inferred from %d using %d", s.Implication, s.Premise)
}

// Proof is a goal formula together with the ordered inference steps
// claimed to derive it. A proof value is never mutated; it is built by a
// collaborator such as the proof file loader and consumed once by Verify.
type Proof struct {
	Goal  Term
	Steps []Inference
}
