package shell

import "strings"

// Route identifies a client-side navigation target. Paths are resolved to an
// enumerated variant once, so panel text never depends on string-prefix
// matching order.
type Route int

const (
	RouteLogin Route = iota
	RouteSignup
	RouteDashboardRoot
	RoutePatients
	RouteAppointments
	RouteBilling
	RouteUnknown
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteSignup:
		return "signup"
	case RouteDashboardRoot:
		return "dashboard"
	case RoutePatients:
		return "patients"
	case RouteAppointments:
		return "appointments"
	case RouteBilling:
		return "billing"
	default:
		return "unknown"
	}
}

// ParseRoute maps a navigation path to its Route. Unmatched paths resolve to
// RouteUnknown; the frontend redirects those to the login page.
func ParseRoute(path string) Route {
	switch path {
	case "/", "/login":
		return RouteLogin
	case "/signup":
		return RouteSignup
	case "/background", "/background/":
		return RouteDashboardRoot
	}

	switch {
	case strings.HasPrefix(path, "/background/patients"):
		return RoutePatients
	case strings.HasPrefix(path, "/background/appointments"):
		return RouteAppointments
	case strings.HasPrefix(path, "/background/billing"):
		return RouteBilling
	}

	return RouteUnknown
}
