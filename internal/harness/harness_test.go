package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	sc, err := LoadScenario(filepath.Join("testdata", "scenarios", name))
	require.NoError(t, err)
	return sc
}

func TestScenario_SaleFlow(t *testing.T) {
	RunWithGolden(t, loadTestScenario(t, "sale_flow.yaml"))
}

func TestScenario_StockDeleteCascade(t *testing.T) {
	RunWithGolden(t, loadTestScenario(t, "stock_delete_cascade.yaml"))
}

func TestRun_UnexpectedErrorAborts(t *testing.T) {
	sc := &Scenario{
		Name: "bad",
		Steps: []Step{
			{Op: "adjust_stock", ID: "s404", Delta: 1},
		},
	}
	_, err := Run(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
}

func TestRun_ExpectedErrorKindMustMatch(t *testing.T) {
	sc := &Scenario{
		Name: "mismatch",
		Steps: []Step{
			// Produces not_found, not insufficient_stock.
			{Op: "adjust_stock", ID: "s404", Delta: 1, ExpectError: "insufficient_stock"},
		},
	}
	_, err := Run(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected insufficient_stock")
}

func TestRun_ExpectedSuccessOnErrorFails(t *testing.T) {
	sc := &Scenario{
		Name: "surprise-success",
		Steps: []Step{
			{Op: "add_stock", Name: "Beans", Category: "Powder", Quantity: 1},
			{Op: "remove_stock", ID: "s1", ExpectError: "not_found"},
		},
	}
	_, err := Run(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got success")
}
