package pages

// Chrome texts shown around every page.
const (
	AppTitle       = "EV Charging Optimization Dashboard"
	NavTitle       = "⚙️ Navigation"
	NavLabel       = "Select Page"
	SidebarCaption = "EV Optimization App © Group Delta"
	Footer         = "Developed by **Group Delta** | EV Charging Optimization Project (2025)"
)

// NavItem is one entry in the sidebar page selector.
type NavItem struct {
	ID     ID     `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Shell describes the sidebar and footer around the active page.
type Shell struct {
	AppTitle string    `json:"app_title"`
	NavTitle string    `json:"nav_title"`
	NavLabel string    `json:"nav_label"`
	Caption  string    `json:"caption"`
	Footer   string    `json:"footer"`
	Items    []NavItem `json:"items"`
}

// NewShell builds the navigation with active marked as selected.
func NewShell(active ID) Shell {
	items := make([]NavItem, 0, len(registry))
	for _, e := range registry {
		items = append(items, NavItem{ID: e.ID, Label: e.Label, Active: e.ID == active})
	}
	return Shell{
		AppTitle: AppTitle,
		NavTitle: NavTitle,
		NavLabel: NavLabel,
		Caption:  SidebarCaption,
		Footer:   Footer,
		Items:    items,
	}
}
