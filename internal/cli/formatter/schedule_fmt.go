package formatter

import (
	"fmt"
	"strings"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
)

// FormatDayEvents renders a shooting day's strip board in order.
func FormatDayEvents(day *domain.ShootingDay, events []*domain.ScheduleEvent) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Shooting day %s", day.Date.Format("2006-01-02"))))
	b.WriteString("\n\n")

	if len(events) == 0 {
		b.WriteString(StyleDim.Render("No events scheduled.") + "\n")
		return b.String()
	}

	headers := []string{"#", "TYPE", "SCENE", "DESCRIPTION", "LOCATION", "DUR", "CAST", "CREW", "EQUIP"}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			fmt.Sprintf("%d", ev.OrderIndex),
			string(ev.Type),
			ev.SceneNumber,
			ev.Description,
			ev.LocationName,
			fmt.Sprintf("%dm", ev.DurationMin),
			fmt.Sprintf("%d", len(ev.CastIDs)),
			fmt.Sprintf("%d", len(ev.CrewIDs)),
			fmt.Sprintf("%d", len(ev.EquipmentIDs)),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatConflictReport renders an advisory double-booking report. A clean
// report is a single green line.
func FormatConflictReport(report engine.ConflictReport) string {
	if report.Empty() {
		return StyleGreen.Render("No conflicts found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render("⚠ Double-booked resources on this day:"))
	b.WriteString("\n")
	writeConflictLine(&b, "cast", report.Cast)
	writeConflictLine(&b, "crew", report.Crew)
	writeConflictLine(&b, "equipment", report.Equipment)
	b.WriteString(StyleDim.Render("Conflicts are advisory; the assignment was not blocked."))
	b.WriteString("\n")
	return b.String()
}

func writeConflictLine(b *strings.Builder, kind string, ids []string) {
	if len(ids) == 0 {
		return
	}
	short := make([]string, len(ids))
	for i, id := range ids {
		short[i] = shortID(id)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render(kind+":"), strings.Join(short, ", ")))
}
