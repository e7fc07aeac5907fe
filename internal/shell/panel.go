package shell

import (
	"github.com/chirosmith/portal-api/internal/model"
)

// PanelKind enumerates every state the summary panel can be in.
type PanelKind int

const (
	PanelDashboardDefault PanelKind = iota
	PanelDashboardWithSelection
	PanelPatients
	PanelAppointments
	PanelBilling
	PanelFallback
)

// Panel is what the summary sidebar displays for a given route and selection.
type Panel struct {
	Kind  PanelKind `json:"-"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

const (
	bodyOverview     = "Quick snapshot of today's activity, upcoming appointments, and recent updates."
	bodyPatients     = "Browse, search, and manage patient profiles, histories, and notes."
	bodyAppointments = "View and manage the schedule, book new visits, and track attendance."
	bodyBilling      = "Review invoices, payments, and insurance claims at a glance."
	bodyFallback     = "Contextual information about the current page will appear here."
)

// ResolvePanel picks the panel content for a route. A selection is only
// surfaced on the dashboard root; it survives navigation to the other
// sections but those keep their own titles.
func ResolvePanel(route Route, selected *model.SelectedSlot) Panel {
	if route == RouteDashboardRoot && selected != nil {
		return Panel{
			Kind:  PanelDashboardWithSelection,
			Title: selected.DayLabel + " — " + selected.TimeLabel,
		}
	}

	switch route {
	case RouteDashboardRoot:
		return Panel{Kind: PanelDashboardDefault, Title: "Dashboard Overview", Body: bodyOverview}
	case RoutePatients:
		return Panel{Kind: PanelPatients, Title: "Patients", Body: bodyPatients}
	case RouteAppointments:
		return Panel{Kind: PanelAppointments, Title: "Appointments", Body: bodyAppointments}
	case RouteBilling:
		return Panel{Kind: PanelBilling, Title: "Billing", Body: bodyBilling}
	default:
		return Panel{Kind: PanelFallback, Title: "Summary", Body: bodyFallback}
	}
}
