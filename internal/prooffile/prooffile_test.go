package prooffile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
)

const identityProofYAML = `
name: identity
goal: ">aa"
steps:
  - axiom: 1
    terms: ["a", ">aa", "a"]
  - axiom: 0
    terms: ["a", ">aa", "a"]
  - mp: {implication: 0, premise: 1}
  - axiom: 0
    terms: ["a", "a", "a"]
  - mp: {implication: 2, premise: 3}
`

func TestParseIdentityProof(t *testing.T) {
	proof, name, err := Parse([]byte(identityProofYAML))
	require.NoError(t, err)
	assert.Equal(t, "identity", name)
	require.Len(t, proof.Steps, 5)

	assert.True(t, proof.Goal.Equal(logic.MustParseTerm(">aa")))

	first, ok := proof.Steps[0].(logic.AxiomInstantiation)
	require.True(t, ok)
	assert.Equal(t, 1, first.Index)
	assert.True(t, first.Terms[1].Equal(logic.MustParseTerm(">aa")))

	last, ok := proof.Steps[4].(logic.ModusPonens)
	require.True(t, ok)
	assert.Equal(t, 2, last.Implication)
	assert.Equal(t, 3, last.Premise)

	report := logic.Verify(proof)
	assert.Equal(t, logic.Derived, report.Status)
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errMsg string
	}{
		{
			name:   "missing goal",
			source: "steps:\n  - axiom: 0\n    terms: [\"a\", \"a\", \"a\"]\n",
			errMsg: "no goal",
		},
		{
			name:   "unparsable goal",
			source: "goal: \">a\"\n",
			errMsg: "goal",
		},
		{
			name:   "metavariable in goal",
			source: "goal: \">Aa\"\n",
			errMsg: "metavariable",
		},
		{
			name:   "axiom index outside the table",
			source: "goal: \"a\"\nsteps:\n  - axiom: 4\n    terms: [\"a\", \"a\", \"a\"]\n",
			errMsg: "outside the table",
		},
		{
			name:   "negative axiom index",
			source: "goal: \"a\"\nsteps:\n  - axiom: -1\n    terms: [\"a\", \"a\", \"a\"]\n",
			errMsg: "outside the table",
		},
		{
			name:   "wrong term count",
			source: "goal: \"a\"\nsteps:\n  - axiom: 0\n    terms: [\"a\", \"a\"]\n",
			errMsg: "exactly 3 terms",
		},
		{
			name:   "unparsable term",
			source: "goal: \"a\"\nsteps:\n  - axiom: 0\n    terms: [\"a\", \">a\", \"a\"]\n",
			errMsg: "term",
		},
		{
			name:   "metavariable in term",
			source: "goal: \"a\"\nsteps:\n  - axiom: 0\n    terms: [\"a\", \"B\", \"a\"]\n",
			errMsg: "metavariable",
		},
		{
			name:   "both axiom and mp",
			source: "goal: \"a\"\nsteps:\n  - axiom: 0\n    terms: [\"a\", \"a\", \"a\"]\n    mp: {implication: 0, premise: 0}\n",
			errMsg: "both",
		},
		{
			name:   "neither axiom nor mp",
			source: "goal: \"a\"\nsteps:\n  - terms: [\"a\", \"a\", \"a\"]\n",
			errMsg: "neither",
		},
		{
			name:   "mp with terms",
			source: "goal: \"a\"\nsteps:\n  - mp: {implication: 0, premise: 0}\n    terms: [\"a\", \"a\", \"a\"]\n",
			errMsg: "no terms",
		},
		{
			name:   "negative mp reference",
			source: "goal: \"a\"\nsteps:\n  - mp: {implication: -1, premise: 0}\n",
			errMsg: "negative",
		},
		{
			name:   "not yaml",
			source: "goal: [unclosed\n",
			errMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.source))
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "identity.proof")
	require.NoError(t, os.WriteFile(path, []byte(identityProofYAML), 0o644))

	proof, name, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "identity", name)
	assert.Len(t, proof.Steps, 5)
}

func TestLoadDefaultsNameToPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.proof")
	source := "goal: \">x>yx\"\nsteps:\n  - axiom: 0\n    terms: [\"x\", \"y\", \"x\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	_, name, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, name)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.proof"))
	require.Error(t, err)
}
