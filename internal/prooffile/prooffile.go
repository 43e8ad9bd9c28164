// Package prooffile loads proofs from their YAML file format.
//
// A proof file names a goal formula and the ordered inference steps
// claimed to derive it. Formulas use the prefix notation of
// logic.ParseTerm. Example:
//
//	name: identity
//	goal: ">aa"
//	steps:
//	  - axiom: 1
//	    terms: ["a", ">aa", "a"]
//	  - axiom: 0
//	    terms: ["a", ">aa", "a"]
//	  - mp: {implication: 0, premise: 1}
//	  - axiom: 0
//	    terms: ["a", "a", "a"]
//	  - mp: {implication: 2, premise: 3}
//
// The loader validates everything the verification engine must never
// see: missing goals, steps that declare both or neither inference kind,
// axiom indices outside the table, term lists of the wrong length,
// unparsable formulas and metavariables in author-supplied formulas.
package prooffile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
)

// Document is the on-disk shape of a proof file.
type Document struct {
	Name  string `yaml:"name,omitempty"`
	Goal  string `yaml:"goal"`
	Steps []Step `yaml:"steps"`
}

// Step is one proof line: either an axiom instantiation or a modus
// ponens application, never both.
type Step struct {
	Axiom *int      `yaml:"axiom,omitempty"`
	Terms []string  `yaml:"terms,omitempty"`
	MP    *ModusRef `yaml:"mp,omitempty"`
}

// ModusRef references two previously derived lines.
type ModusRef struct {
	Implication int `yaml:"implication"`
	Premise     int `yaml:"premise"`
}

// Load reads the proof file at path. The returned name is the
// document's display name, defaulting to the path when absent.
func Load(path string) (logic.Proof, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return logic.Proof{}, "", err
	}
	proof, name, err := Parse(data)
	if err != nil {
		return logic.Proof{}, "", fmt.Errorf("%s: %w", path, err)
	}
	if name == "" {
		name = path
	}
	return proof, name, nil
}

// Parse converts proof document bytes into a proof.
func Parse(data []byte) (logic.Proof, string, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return logic.Proof{}, "", err
	}
	proof, err := doc.Proof()
	if err != nil {
		return logic.Proof{}, "", err
	}
	return proof, doc.Name, nil
}

// Proof validates the document and converts it into the engine's proof
// representation.
func (d Document) Proof() (logic.Proof, error) {
	if d.Goal == "" {
		return logic.Proof{}, fmt.Errorf("proof file has no goal")
	}
	goal, err := logic.ParseTerm(d.Goal)
	if err != nil {
		return logic.Proof{}, fmt.Errorf("goal %q: %w", d.Goal, err)
	}
	if logic.ContainsMeta(goal) {
		return logic.Proof{}, fmt.Errorf("goal %q contains a metavariable", d.Goal)
	}

	steps := make([]logic.Inference, 0, len(d.Steps))
	for i, step := range d.Steps {
		inference, err := step.inference()
		if err != nil {
			return logic.Proof{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, inference)
	}
	return logic.Proof{Goal: goal, Steps: steps}, nil
}

func (s Step) inference() (logic.Inference, error) {
	switch {
	case s.Axiom != nil && s.MP != nil:
		return nil, fmt.Errorf("step declares both an axiom instantiation and a modus ponens")

	case s.Axiom != nil:
		index := *s.Axiom
		if index < 0 || index >= logic.AxiomCount {
			return nil, fmt.Errorf("axiom index %d outside the table", index)
		}
		if len(s.Terms) != 3 {
			return nil, fmt.Errorf("axiom instantiation needs exactly 3 terms, got %d", len(s.Terms))
		}
		var terms [3]logic.Term
		for i, src := range s.Terms {
			term, err := logic.ParseTerm(src)
			if err != nil {
				return nil, fmt.Errorf("term %q: %w", src, err)
			}
			if logic.ContainsMeta(term) {
				return nil, fmt.Errorf("term %q contains a metavariable", src)
			}
			terms[i] = term
		}
		return logic.AxiomInstantiation{Index: index, Terms: terms}, nil

	case s.MP != nil:
		if len(s.Terms) > 0 {
			return nil, fmt.Errorf("modus ponens takes no terms")
		}
		if s.MP.Implication < 0 || s.MP.Premise < 0 {
			return nil, fmt.Errorf("modus ponens references a negative line")
		}
		return logic.ModusPonens{Implication: s.MP.Implication, Premise: s.MP.Premise}, nil

	default:
		return nil, fmt.Errorf("step declares neither an axiom instantiation nor a modus ponens")
	}
}
