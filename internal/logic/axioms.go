package logic

// AxiomCount is the number of axiom schemas in the table.
const AxiomCount = 4

// axiomTable holds the four fixed axiom schemas, built once at package
// initialization and never mutated, so concurrent readers need no
// synchronization.
var axiomTable = [AxiomCount]Term{
	MustParseTerm(">A>BA"),         // A -> (B -> A)
	MustParseTerm(">>A>BC>>AB>AC"), // (A -> (B -> C)) -> ((A -> B) -> (A -> C))
	MustParseTerm(">>>ABAA"),       // ((A -> B) -> A) -> A
	MustParseTerm(">!A"),           // ! -> A
}

// metaCodes lists the metavariable codes substituted during axiom
// instantiation, in substitution order. The order is safe because the
// schemas contain no nested metavariables and instantiation terms are
// required to be metavariable-free.
var metaCodes = [3]int{'A', 'B', 'C'}

// Axiom returns the schema at the given table index. Passing an index
// outside [0, AxiomCount) is a bug in the caller; the verifier rejects
// unknown indices before reaching here.
func Axiom(index int) Term {
	return axiomTable[index]
}
