package types

import "github.com/khang200923/simple-propositional-logic/internal/logic"

// CheckResult couples a checked proof with its verification report.
// It is the currency between the check engine, the formatter and the CLI.
type CheckResult struct {
	Filename string
	Name     string
	Proof    logic.Proof
	Report   logic.VerificationReport
}
