package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/tdsretail/stockroom/internal/model"
)

// deletedItemLabel renders sale lines whose menu item no longer exists.
const deletedItemLabel = "Deleted Item"

// WriteCSV renders the full report: a header, the sales log, and the
// inventory status with lifetime consumption. generatedAt is a parameter
// so renders are reproducible.
func WriteCSV(w io.Writer, state model.State, generatedAt time.Time) error {
	cw := csv.NewWriter(w)

	write := func(record ...string) {
		// Errors surface once, from cw.Error() after Flush.
		_ = cw.Write(record)
	}

	write("TDS STOCK MANAGEMENT REPORT")
	write("Generated at: " + formatMillis(generatedAt.UnixMilli()))
	write("")

	write("SALES LOG")
	write("Timestamp", "Drink Name", "Quantity")
	for _, sale := range state.Sales {
		for _, line := range sale.Items {
			name := deletedItemLabel
			if m, ok := state.FindMenu(line.MenuItemID); ok {
				name = m.Name
			}
			write(formatMillis(sale.Timestamp), name, formatQuantity(line.Quantity))
		}
	}
	write("")

	usage := LifetimeConsumption(state)
	write("INVENTORY STATUS")
	write("Item Name", "Type", "Unit", "Remaining", "Alert Threshold", "Consumption")
	for _, s := range state.Stock {
		write(
			s.Name,
			string(s.Category),
			string(s.Unit),
			formatQuantity(s.RemainingQuantity),
			formatQuantity(s.AlertThreshold),
			formatQuantity(usage[s.ID]),
		)
	}

	cw.Flush()
	return cw.Error()
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
