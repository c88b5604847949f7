package formatter

import (
	"fmt"

	"callsheet/internal/domain"
)

// FormatMoney renders an optional amount, or a dim dash when unset.
func FormatMoney(v *float64) string {
	if v == nil {
		return StyleDim.Render("—")
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatBudgetItems renders a budget item table for one category or project.
func FormatBudgetItems(items []*domain.BudgetItem) string {
	if len(items) == 0 {
		return StyleDim.Render("No budget items.") + "\n"
	}

	headers := []string{"ID", "DESCRIPTION", "UNIT", "RATE", "QTY", "ESTIMATED", "ACTUAL", "LINKED"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		linked := StyleDim.Render("—")
		if kind, id, ok := item.LinkedResource(); ok {
			linked = StyleBlue.Render(fmt.Sprintf("%s:%s", kind, shortID(id)))
		}
		qty := StyleDim.Render("—")
		if item.Quantity != nil {
			qty = fmt.Sprintf("%g", *item.Quantity)
		}
		rows = append(rows, []string{
			shortID(item.ID),
			item.Description,
			item.Unit,
			FormatMoney(item.UnitRate),
			qty,
			FormatMoney(item.EstimatedAmount),
			FormatMoney(item.ActualAmount),
			linked,
		})
	}
	return RenderTable(headers, rows)
}

// shortID truncates a UUID to its first segment for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
