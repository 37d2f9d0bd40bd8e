package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/transport"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminToken  = "admin-token"
	clientToken = "client-token"
	internalKey = "internal-key"
)

type fakeUserApp struct {
	register func(req *model.RegisterRequest) (*model.PublicUser, error)
}

func (f *fakeUserApp) Register(ctx context.Context, req *model.RegisterRequest) (*model.PublicUser, error) {
	return f.register(req)
}

func (f *fakeUserApp) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	return &model.LoginResponse{Name: "Ayu", Email: req.Identifier, Token: adminToken}, nil
}

func (f *fakeUserApp) ValidateToken(ctx context.Context, token string) (uint64, error) {
	switch token {
	case adminToken:
		return 1, nil
	case clientToken:
		return 2, nil
	}
	return 0, errors.SetCustomError(constant.ErrUnauthorize)
}

func (f *fakeUserApp) GetUser(ctx context.Context, id uint64) (*model.PublicUser, error) {
	role := constant.RoleClient
	if id == 1 {
		role = constant.RoleAdmin
	}
	return &model.PublicUser{ID: id, Role: role}, nil
}

type fakeDashboardApp struct {
	data *model.DashboardData
	err  error
}

func (f *fakeDashboardApp) GetDashboard(ctx context.Context) (*model.DashboardData, error) {
	return f.data, f.err
}

type fakeVisitApp struct{ calls int }

func (f *fakeVisitApp) Record(ctx context.Context) error {
	f.calls++
	return nil
}

type fakeOrderApp struct{ cancelled []uint64 }

func (f *fakeOrderApp) CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error) {
	return &model.OrderResponse{OrderID: 1, TotalAmount: 100, ExpiresAt: time.Now()}, nil
}

func (f *fakeOrderApp) PayOrder(ctx context.Context, userID, orderID uint64) error {
	return nil
}

func (f *fakeOrderApp) CancelOrder(ctx context.Context, orderID uint64) error {
	f.cancelled = append(f.cancelled, orderID)
	return nil
}

func newHandler(rh *transport.RestHandler) http.Handler {
	logger.Set(zap.NewNop())
	return transport.NewTransport(rh, internalKey)
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	created := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	validBody := `{"name":"Ayu","email":"ayu@example.com","phoneNumber":"9876543210","password":"password123"}`

	tests := []struct {
		name        string
		body        string
		register    func(req *model.RegisterRequest) (*model.PublicUser, error)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "created",
			body: validBody,
			register: func(req *model.RegisterRequest) (*model.PublicUser, error) {
				return &model.PublicUser{ID: 7, Name: req.Name, Email: req.Email, PhoneNumber: req.PhoneNumber, Role: constant.RoleClient, CreatedAt: created}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid request",
		},
		{
			name: "validation message passed through",
			body: `{"name":"Ayu"}`,
			register: func(req *model.RegisterRequest) (*model.PublicUser, error) {
				return nil, errors.SetCustomError(constant.ErrMissingFields)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please provide all required fields",
		},
		{
			name: "existing account",
			body: validBody,
			register: func(req *model.RegisterRequest) (*model.PublicUser, error) {
				return nil, errors.SetCustomError(constant.ErrCredentialExists)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "An account with this email already exists",
		},
		{
			name: "unexpected failure",
			body: validBody,
			register: func(req *model.RegisterRequest) (*model.PublicUser, error) {
				return nil, errors.SetCustomError(constant.ErrRegistrationFailed)
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An error occurred during registration. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(&transport.RestHandler{UserApp: &fakeUserApp{register: tt.register}})
			rec := do(h, http.MethodPost, "/api/auth/register", "", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, true, body["success"])
				user := body["user"].(map[string]interface{})
				assert.Equal(t, "9876543210", user["phoneNumber"])
				assert.Equal(t, "client", user["role"])
				assert.NotContains(t, user, "password")
				assert.NotContains(t, user, "passwordHash")
				return
			}
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestDashboardAccess(t *testing.T) {
	dashboard := &fakeDashboardApp{data: &model.DashboardData{TotalOrders: 12, OrderStatusCounts: map[string]int64{"pending": 1}}}
	h := newHandler(&transport.RestHandler{UserApp: &fakeUserApp{}, DashboardApp: dashboard})

	t.Run("no token", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/admin/dashboard", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("client role", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/admin/dashboard", clientToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/admin/dashboard", adminToken, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var res model.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Success)
		require.NotNil(t, res.Data)
		assert.Equal(t, int64(12), res.Data.TotalOrders)
	})
}

func TestDashboardFailure(t *testing.T) {
	h := newHandler(&transport.RestHandler{
		UserApp:      &fakeUserApp{},
		DashboardApp: &fakeDashboardApp{err: errors.SetCustomError(constant.ErrDashboardUnavailable)},
	})

	rec := do(h, http.MethodGet, "/api/admin/dashboard", adminToken, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch dashboard data", body["error"])
	assert.NotContains(t, body, "data")
}

func TestRecordVisit(t *testing.T) {
	visits := &fakeVisitApp{}
	h := newHandler(&transport.RestHandler{UserApp: &fakeUserApp{}, VisitApp: visits})

	rec := do(h, http.MethodPost, "/api/visits", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, visits.calls)
}

func TestInternalCancel(t *testing.T) {
	orders := &fakeOrderApp{}
	h := newHandler(&transport.RestHandler{UserApp: &fakeUserApp{}, OrderApp: orders})

	rec := do(h, http.MethodPost, "/internal/v1/order/5/cancel", "wrong", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, orders.cancelled)

	rec = do(h, http.MethodPost, "/internal/v1/order/5/cancel", internalKey, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint64{5}, orders.cancelled)
}

func TestCreateOrderRequiresToken(t *testing.T) {
	h := newHandler(&transport.RestHandler{UserApp: &fakeUserApp{}, OrderApp: &fakeOrderApp{}})
	body := `{"items":[{"product_id":1,"quantity":2}],"shipping_state":"Gujarat"}`

	rec := do(h, http.MethodPost, "/api/orders", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/api/orders", clientToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])
}
