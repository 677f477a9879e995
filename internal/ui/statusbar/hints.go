package statusbar

import "github.com/Argeon482/Pet-Farm/internal/types"

// GetHints returns the keybinding hints for the given view
func GetHints(view types.View) string {
	switch view {
	case types.ViewDashboard:
		return "S: schedule  L: scenario  r: refresh  tab: views  ?: help  q: quit"
	case types.ViewBriefing:
		return "j/k: tasks  enter: complete  c: complete active  /: search  s: sort"
	case types.ViewFactory:
		return "h/l: blocks  j/k: houses  space: house menu  a: add house"
	case types.ViewWarehouse:
		return "j/k: items  +/-: stock  e: edit stock"
	case types.ViewSales:
		return "s: sell  p: perfection attempt"
	default:
		return ""
	}
}

// TimeHints returns the time travel hints shown in simulated mode
func TimeHints() string {
	return "n/N: next/prev check-in  >: +1 day  W: +1 week"
}
