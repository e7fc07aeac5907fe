package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chirosmith/portal-api/internal/model"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", RouteLogin},
		{"/login", RouteLogin},
		{"/signup", RouteSignup},
		{"/background", RouteDashboardRoot},
		{"/background/", RouteDashboardRoot},
		{"/background/patients", RoutePatients},
		{"/background/patients/123", RoutePatients},
		{"/background/appointments", RouteAppointments},
		{"/background/billing", RouteBilling},
		{"/background/unknown", RouteUnknown},
		{"/nowhere", RouteUnknown},
		{"", RouteUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRoute(tt.path), "path %q", tt.path)
	}
}

func TestResolvePanel(t *testing.T) {
	sel := &model.SelectedSlot{DayLabel: "Mon Jan 1", TimeLabel: "5:00 AM"}

	t.Run("dashboard without selection", func(t *testing.T) {
		p := ResolvePanel(RouteDashboardRoot, nil)
		assert.Equal(t, PanelDashboardDefault, p.Kind)
		assert.Equal(t, "Dashboard Overview", p.Title)
		assert.NotEmpty(t, p.Body)
	})

	t.Run("dashboard with selection", func(t *testing.T) {
		p := ResolvePanel(RouteDashboardRoot, sel)
		assert.Equal(t, PanelDashboardWithSelection, p.Kind)
		assert.Equal(t, "Mon Jan 1 — 5:00 AM", p.Title)
		assert.Empty(t, p.Body)
	})

	t.Run("sections keep their titles even with a selection", func(t *testing.T) {
		for route, title := range map[Route]string{
			RoutePatients:     "Patients",
			RouteAppointments: "Appointments",
			RouteBilling:      "Billing",
		} {
			p := ResolvePanel(route, sel)
			assert.Equal(t, title, p.Title)
			assert.NotEmpty(t, p.Body)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		p := ResolvePanel(RouteUnknown, nil)
		assert.Equal(t, PanelFallback, p.Kind)
		assert.Equal(t, "Summary", p.Title)
	})
}

func TestDisplayName(t *testing.T) {
	t.Run("default when empty", func(t *testing.T) {
		n := NewNameCache(time.Minute)
		assert.Equal(t, "User", n.DisplayName())
	})

	t.Run("priority order", func(t *testing.T) {
		n := NewNameCache(time.Minute)
		n.Set("userName", "cdoe")
		n.Set("name", "Connor Doe")
		n.Set("firstName", "Connor")
		assert.Equal(t, "Connor", n.DisplayName())
	})

	t.Run("falls through missing keys", func(t *testing.T) {
		n := NewNameCache(time.Minute)
		n.Set("userName", "cdoe")
		assert.Equal(t, "cdoe", n.DisplayName())
	})

	t.Run("json encoded value decodes", func(t *testing.T) {
		n := NewNameCache(time.Minute)
		n.Set("firstName", `"Connor"`)
		assert.Equal(t, "Connor", n.DisplayName())
	})

	t.Run("raw value survives decode failure", func(t *testing.T) {
		n := NewNameCache(time.Minute)
		n.Set("firstName", "Connor")
		assert.Equal(t, "Connor", n.DisplayName())
	})
}
