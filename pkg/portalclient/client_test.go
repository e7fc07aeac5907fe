package portalclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupPostsWireFieldsOnly(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/account/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"message":   "Account created successfully",
			"accountId": "8a4f2d6e-0000-0000-0000-000000000001",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.Signup(context.Background(), validSignupForm())
	require.NoError(t, err)
	assert.Equal(t, "8a4f2d6e-0000-0000-0000-000000000001", id)

	assert.Equal(t, map[string]string{
		"str_email":         "connor@example.com",
		"str_first_name":    "Connor",
		"str_last_name":     "Doe",
		"str_phone":         "555-0100",
		"dtm_date_of_birth": "1990-04-12",
	}, got)

	// The password pair stays local.
	_, hasPassword := got["password"]
	assert.False(t, hasPassword)
}

func TestSignupValidationBlocksRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(srv.URL)

	form := validSignupForm()
	form.Password = "a"
	form.ConfirmPassword = "b"

	_, err := c.Signup(context.Background(), form)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, 0, calls, "no network call may be issued for an invalid form")
}

func TestSignupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Signup(context.Background(), validSignupForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal server error")
}

func TestSelectSlotCarriesSession(t *testing.T) {
	var sessionsSeen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionsSeen = append(sessionsSeen, r.Header.Get("X-Session-ID"))
		w.Header().Set("X-Session-ID", "session-1")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]string{"day_label": "Mon Jan 1", "time_label": "5:00 AM"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	slot, err := c.SelectSlot(context.Background(), "2024-01-01", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Mon Jan 1", slot.DayLabel)
	assert.Equal(t, "5:00 AM", slot.TimeLabel)
	assert.Equal(t, "session-1", c.SessionID())

	// The minted session rides along on the next call.
	_, err = c.SelectSlot(context.Background(), "2024-01-01", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "session-1"}, sessionsSeen)
}

func TestGridAndPanel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/schedule/grid":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "success",
				"data": map[string]interface{}{
					"days":  []map[string]string{{"iso_date": "2024-01-01", "weekday": "Mon", "date": "Jan 1"}},
					"slots": []map[string]interface{}{{"minutes": 300, "label": "5:00 AM"}},
				},
			})
		case "/api/v1/shell/panel":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "success",
				"data":   map[string]string{"route": "patients", "title": "Patients", "body": "x"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	grid, err := c.Grid(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, grid.Days, 1)
	assert.Equal(t, "Mon", grid.Days[0].Weekday)

	panel, err := c.Panel(context.Background(), "/background/patients")
	require.NoError(t, err)
	assert.Equal(t, "Patients", panel.Title)
}

func TestEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "invalid anchor date"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Grid(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid anchor date")
}
