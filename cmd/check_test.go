package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
	tt "github.com/khang200923/simple-propositional-logic/internal/types"
)

func TestBuildJSONReportsDerived(t *testing.T) {
	x, y := logic.NewVar('x'), logic.NewVar('y')
	proof := logic.Proof{
		Goal: logic.Imply(x, logic.Imply(y, x)),
		Steps: []logic.Inference{
			logic.AxiomInstantiation{Index: 0, Terms: [3]logic.Term{x, y, x}},
		},
	}

	reports := buildJSONReports([]tt.CheckResult{{
		Filename: "simple.proof",
		Name:     "simple",
		Proof:    proof,
		Report:   logic.Verify(proof),
	}})

	require.Len(t, reports, 1)
	assert.Equal(t, "simple.proof", reports[0].File)
	assert.Equal(t, "Derived", reports[0].Status)
	assert.Equal(t, "(x) -> (y) -> x", reports[0].Goal)
	assert.Empty(t, reports[0].Reason)
	assert.Nil(t, reports[0].Step)
	assert.Equal(t, []string{"(x) -> (y) -> x"}, reports[0].Trace)
}

func TestBuildJSONReportsFailed(t *testing.T) {
	proof := logic.Proof{
		Goal: logic.NewVar('a'),
		Steps: []logic.Inference{
			logic.ModusPonens{Implication: 0, Premise: 0},
		},
	}

	reports := buildJSONReports([]tt.CheckResult{{
		Name:   "bad",
		Proof:  proof,
		Report: logic.Verify(proof),
	}})

	require.Len(t, reports, 1)
	assert.Equal(t, "Failed", reports[0].Status)
	assert.Equal(t, "step references a line not yet derived", reports[0].Reason)
	require.NotNil(t, reports[0].Step)
	assert.Equal(t, 0, *reports[0].Step)
	assert.Empty(t, reports[0].Trace)

	// the report must serialize without surprises
	d, err := json.Marshal(reports)
	require.NoError(t, err)
	assert.Contains(t, string(d), `"status":"Failed"`)
	assert.Contains(t, string(d), `"step":0`)
}
