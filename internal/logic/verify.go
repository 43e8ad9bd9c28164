package logic

import "fmt"

// VerificationStatus represents the outcome of replaying a proof.
type VerificationStatus int

const (
	_ VerificationStatus = iota
	// Derived indicates every step replayed validly and the goal appears
	// in the derivation trace.
	Derived
	// Failed indicates the proof is invalid.
	Failed
)

func (s VerificationStatus) String() string {
	switch s {
	case Derived:
		return "Derived"
	case Failed:
		return "Failed"
	default:
		return "?"
	}
}

// FailureReason explains why verification failed.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	// ReasonUnknownAxiom indicates an instantiation referenced an index
	// outside the axiom table.
	ReasonUnknownAxiom
	// ReasonDanglingReference indicates a modus ponens step cited a line
	// not yet present in the trace.
	ReasonDanglingReference
	// ReasonNotAnImplication indicates the cited implication line is not
	// an implication term.
	ReasonNotAnImplication
	// ReasonPremiseMismatch indicates the implication's premise does not
	// structurally equal the cited premise line.
	ReasonPremiseMismatch
	// ReasonMetaVariableInTerm indicates an instantiation term is missing
	// or contains a metavariable.
	ReasonMetaVariableInTerm
	// ReasonGoalNotDerived indicates every step replayed validly but the
	// goal never appears in the trace.
	ReasonGoalNotDerived
)

func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnknownAxiom:
		return "axiom index outside the table"
	case ReasonDanglingReference:
		return "step references a line not yet derived"
	case ReasonNotAnImplication:
		return "referenced line is not an implication"
	case ReasonPremiseMismatch:
		return "implication premise does not match the referenced line"
	case ReasonMetaVariableInTerm:
		return "instantiation term is missing or contains a metavariable"
	case ReasonGoalNotDerived:
		return "goal never appears in the derivation trace"
	default:
		return "unknown"
	}
}

// VerificationReport provides detailed information about verification.
type VerificationReport struct {
	Status VerificationStatus
	Reason FailureReason
	Step   int // index of the failing step, -1 when derived
	Detail string
	Trace  []Term // full trace when derived, the derived prefix otherwise
}

// VerifyConfig controls how strictly the verifier treats instantiation
// terms.
type VerifyConfig struct {
	// AllowMetaVariables disables the rejection of metavariables inside
	// instantiation terms. A metavariable that survives substitution can
	// never match a goal or a concrete premise, so such proofs still
	// fail, just later and with a less precise reason.
	AllowMetaVariables bool
}

// Verifier replays proofs against the axiom table.
type Verifier struct {
	config VerifyConfig
}

// NewVerifier creates a verifier with the default configuration.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// NewVerifierWithConfig creates a verifier with the given configuration.
func NewVerifierWithConfig(config VerifyConfig) *Verifier {
	return &Verifier{config: config}
}

// Verify replays the proof using the default configuration.
func Verify(p Proof) VerificationReport {
	return NewVerifier().Verify(p)
}

// Verify replays every step of the proof in order, building the
// derivation trace, and stops at the first invalid step. The proof is
// derived iff every step replays validly and the goal occurs anywhere in
// the trace. Verify is pure: concurrent calls over independent proofs
// need no coordination.
func (v *Verifier) Verify(p Proof) VerificationReport {
	trace := make([]Term, 0, len(p.Steps))

	for i, step := range p.Steps {
		var derived Term
		var failure *stepFailure

		switch s := step.(type) {
		case AxiomInstantiation:
			derived, failure = v.instantiate(s)
		case ModusPonens:
			derived, failure = applyModusPonens(trace, s)
		default:
			panic(fmt.Sprintf("logic: unknown inference variant %T", step))
		}

		if failure != nil {
			return VerificationReport{
				Status: Failed,
				Reason: failure.reason,
				Step:   i,
				Detail: failure.detail,
				Trace:  trace,
			}
		}
		trace = append(trace, derived)
	}

	if p.Goal != nil {
		for _, derived := range trace {
			if p.Goal.Equal(derived) {
				return VerificationReport{Status: Derived, Reason: ReasonNone, Step: -1, Trace: trace}
			}
		}
	}
	return VerificationReport{
		Status: Failed,
		Reason: ReasonGoalNotDerived,
		Step:   len(p.Steps),
		Detail: fmt.Sprintf("goal %s never appears in the trace", termOrBlank(p.Goal)),
		Trace:  trace,
	}
}

// stepFailure carries the reason and detail of an invalid step; the
// verifier attaches the step index.
type stepFailure struct {
	reason FailureReason
	detail string
}

// instantiate produces the concrete axiom instance for s, substituting
// A, B and C sequentially in that fixed order.
func (v *Verifier) instantiate(s AxiomInstantiation) (Term, *stepFailure) {
	if s.Index < 0 || s.Index >= AxiomCount {
		return nil, &stepFailure{
			reason: ReasonUnknownAxiom,
			detail: fmt.Sprintf("axiom %d does not exist", s.Index),
		}
	}

	if !v.config.AllowMetaVariables {
		for j, t := range s.Terms {
			if t == nil {
				return nil, &stepFailure{
					reason: ReasonMetaVariableInTerm,
					detail: fmt.Sprintf("term %c is missing", rune(metaCodes[j])),
				}
			}
			if ContainsMeta(t) {
				return nil, &stepFailure{
					reason: ReasonMetaVariableInTerm,
					detail: fmt.Sprintf("term %c = %s contains a metavariable", rune(metaCodes[j]), t),
				}
			}
		}
	}

	derived := Axiom(s.Index)
	for j, code := range metaCodes {
		if s.Terms[j] == nil {
			continue
		}
		derived = SubstituteMeta(derived, code, s.Terms[j])
	}
	return derived, nil
}

// applyModusPonens combines two previously derived lines: from P -> Q
// and P it derives Q.
func applyModusPonens(trace []Term, s ModusPonens) (Term, *stepFailure) {
	if s.Implication < 0 || s.Implication >= len(trace) {
		return nil, &stepFailure{
			reason: ReasonDanglingReference,
			detail: fmt.Sprintf("line %d is not derived yet", s.Implication),
		}
	}
	if s.Premise < 0 || s.Premise >= len(trace) {
		return nil, &stepFailure{
			reason: ReasonDanglingReference,
			detail: fmt.Sprintf("line %d is not derived yet", s.Premise),
		}
	}

	impl, ok := trace[s.Implication].(Implication)
	if !ok {
		return nil, &stepFailure{
			reason: ReasonNotAnImplication,
			detail: fmt.Sprintf("line %d is %s", s.Implication, trace[s.Implication]),
		}
	}

	premise := trace[s.Premise]
	if !impl.Premise.Equal(premise) {
		return nil, &stepFailure{
			reason: ReasonPremiseMismatch,
			detail: fmt.Sprintf("line %d expects premise %s, line %d is %s",
				s.Implication, impl.Premise, s.Premise, premise),
		}
	}
	return impl.Conclusion, nil
}
