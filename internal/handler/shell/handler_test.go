package shell

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirosmith/portal-api/internal/model"
	"github.com/chirosmith/portal-api/internal/session"
	"github.com/chirosmith/portal-api/internal/shell"
)

func setupRouter(store session.SelectionStore, names *shell.NameCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(store, names).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func getPanel(t *testing.T, r *gin.Engine, path, sessionID string) panelResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shell/panel?path="+path, nil)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data panelResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestGetPanel(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	r := setupRouter(store, shell.NewNameCache(time.Minute))

	t.Run("dashboard default", func(t *testing.T) {
		p := getPanel(t, r, "/background", "")
		assert.Equal(t, "Dashboard Overview", p.Title)
		assert.NotEmpty(t, p.Body)
	})

	t.Run("dashboard with selection", func(t *testing.T) {
		require.NoError(t, store.Put(context.Background(), "s1", model.SelectedSlot{
			DayLabel: "Mon Jan 1", TimeLabel: "5:00 AM",
		}))

		p := getPanel(t, r, "/background", "s1")
		assert.Equal(t, "Mon Jan 1 — 5:00 AM", p.Title)
		assert.Empty(t, p.Body)

		// Other sections keep their titles; the selection survives.
		p = getPanel(t, r, "/background/billing", "s1")
		assert.Equal(t, "Billing", p.Title)

		p = getPanel(t, r, "/background", "s1")
		assert.Equal(t, "Mon Jan 1 — 5:00 AM", p.Title)
	})

	t.Run("sections", func(t *testing.T) {
		assert.Equal(t, "Patients", getPanel(t, r, "/background/patients", "").Title)
		assert.Equal(t, "Appointments", getPanel(t, r, "/background/appointments", "").Title)
	})

	t.Run("unknown path redirects to login", func(t *testing.T) {
		p := getPanel(t, r, "/nowhere", "")
		assert.Equal(t, "Summary", p.Title)
		assert.Equal(t, "/login", p.Redirect)
	})
}

func TestGetDisplayName(t *testing.T) {
	names := shell.NewNameCache(time.Minute)
	r := setupRouter(session.NewMemoryStore(time.Minute), names)

	fetch := func() string {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/shell/display-name", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				Name string `json:"name"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Data.Name
	}

	assert.Equal(t, "User", fetch())

	names.Set("firstName", "Connor")
	assert.Equal(t, "Connor", fetch())
}
