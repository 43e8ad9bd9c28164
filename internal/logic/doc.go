// Package logic implements the term algebra and the proof verification
// engine for a minimal Hilbert-style deduction system over implicational
// propositional logic extended with a contradiction constant.
//
// Formulas are immutable Term values compared by deep structural equality.
// A proof is a goal formula plus an ordered list of inference steps, each
// either an axiom instantiation (substituting concrete terms for the
// metavariables A, B and C of one of the four axiom schemas) or an
// application of modus ponens over two previously derived lines. The
// verifier replays the steps in a single pass, building the derivation
// trace; the proof is derived when every step replays validly and the goal
// appears somewhere in the trace.
//
// Out of scope:
//   - quantifiers and connectives beyond implication and contradiction
//   - proof search (the engine checks proofs, it does not construct them)
//   - incremental verification (a proof is checked as a whole)
package logic
