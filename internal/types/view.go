// Package types contains shared types used across the application.
package types

// View is the screen the TUI is showing
type View int

const (
	ViewDashboard View = iota
	ViewBriefing
	ViewFactory
	ViewWarehouse
	ViewSales
)

// Views lists every view in tab order
var Views = []View{ViewDashboard, ViewBriefing, ViewFactory, ViewWarehouse, ViewSales}

// String returns the tab label of the view
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "DASHBOARD"
	case ViewBriefing:
		return "BRIEFING"
	case ViewFactory:
		return "FACTORY"
	case ViewWarehouse:
		return "WAREHOUSE"
	case ViewSales:
		return "SALES"
	default:
		return "UNKNOWN"
	}
}

// Next returns the following view, wrapping around
func (v View) Next() View {
	return Views[(int(v)+1)%len(Views)]
}

// Prev returns the preceding view, wrapping around
func (v View) Prev() View {
	return Views[(int(v)-1+len(Views))%len(Views)]
}
