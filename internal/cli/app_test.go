package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdsretail/stockroom/internal/engine"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantID  string
		wantQty float64
		wantErr bool
	}{
		{"simple", "s1:200", "s1", 200, false},
		{"fractional", "m2:0.5", "m2", 0.5, false},
		{"missing_separator", "s1", "", 0, true},
		{"empty_id", ":5", "", 0, true},
		{"bad_quantity", "s1:lots", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, qty, err := parseRef(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestParseIngredients(t *testing.T) {
	lines, err := parseIngredients([]string{"s1:200", "s2:150"})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "s1", lines[0].StockItemID)
	assert.Equal(t, 200.0, lines[0].Quantity)
	assert.Empty(t, lines[0].Unit)

	_, err = parseIngredients([]string{"s1:200", "nonsense"})
	require.Error(t, err)
}

func TestEngineError_Codes(t *testing.T) {
	rejections := []error{
		&engine.ValidationError{Field: "name", Message: "must not be empty"},
		&engine.NotFoundError{Kind: "stock item", ID: "s404"},
		&engine.InsufficientStockError{},
	}
	for _, rejection := range rejections {
		assert.Equal(t, ExitFailure, GetExitCode(engineError(rejection)))
	}

	assert.Equal(t, ExitCommandError, GetExitCode(engineError(os.ErrPermission)))
}

func TestLoadCartFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.yaml")
	cart := `items:
  - menu: m1
    quantity: 3
  - menu: m2
    quantity: 1
`
	require.NoError(t, os.WriteFile(path, []byte(cart), 0o644))

	lines, err := loadCartFile(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "m1", lines[0].MenuItemID)
	assert.Equal(t, 3.0, lines[0].Quantity)
	assert.Equal(t, "m2", lines[1].MenuItemID)
}

func TestLoadCartFile_Missing(t *testing.T) {
	_, err := loadCartFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCartFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: {not a list"), 0o644))

	_, err := loadCartFile(path)
	require.Error(t, err)
}
