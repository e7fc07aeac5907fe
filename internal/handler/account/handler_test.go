package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirosmith/portal-api/internal/middleware"
	"github.com/chirosmith/portal-api/internal/model"
)

type fakeService struct {
	signupErr error
	created   []*model.SignupRequest
	accountID uuid.UUID
}

func (f *fakeService) Signup(_ context.Context, req *model.SignupRequest) (*model.Account, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	f.created = append(f.created, req)
	if f.accountID == uuid.Nil {
		f.accountID = uuid.New()
	}
	return &model.Account{
		ID:             f.accountID,
		Email:          req.Email,
		AccountType:    model.AccountTypePractitioner,
		AccountSubtype: model.AccountSubtypeChiropractor,
	}, nil
}

func (f *fakeService) GetAccount(_ context.Context, id uuid.UUID) (*model.Account, *model.AccountInfo, error) {
	if id != f.accountID {
		return nil, nil, errors.New("account not found")
	}
	return &model.Account{ID: id}, &model.AccountInfo{AccountID: id, FirstName: "Connor"}, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewHandler(svc)
	h.RegisterRoutes(r.Group(""))
	h.RegisterAPIRoutes(r.Group("/api/v1"))
	return r
}

func signupBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"str_email":         "connor@example.com",
		"str_first_name":    "Connor",
		"str_last_name":     "Doe",
		"str_phone":         "555-0100",
		"dtm_date_of_birth": "1990-04-12",
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestSignupEndpoint(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/signup", signupBody(t))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message   string `json:"message"`
		AccountID string `json:"accountId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Account created successfully", resp.Message)
	assert.NotEmpty(t, resp.AccountID)
	assert.Equal(t, svc.accountID.String(), resp.AccountID)

	require.Len(t, svc.created, 1)
	assert.Equal(t, "connor@example.com", svc.created[0].Email)
}

func TestSignupEndpointStoreFailure(t *testing.T) {
	svc := &fakeService{signupErr: errors.New("failed to create account info: column constraint violated")}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/signup", signupBody(t))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Store failures stay opaque to the caller.
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
}

func TestSignupEndpointMalformedBody(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/signup", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAccountEndpoint(t *testing.T) {
	svc := &fakeService{accountID: uuid.New()}
	r := setupRouter(svc)

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+uuid.New().String(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+svc.accountID.String(), nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Status string `json:"status"`
			Data   struct {
				Info struct {
					FirstName string `json:"first_name"`
				} `json:"info"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Connor", resp.Data.Info.FirstName)
	})
}
