package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	adapterhttp "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/generated/servers"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackParcelHandler struct {
	mock.Mock
}

func (m *MockTrackParcelHandler) Handle(
	ctx context.Context,
	query queries.TrackParcelQuery,
) (queries.TrackParcelQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.TrackParcelQueryResponse), args.Error(1)
}

func newTestServer(trackHandler adapterhttp.TrackParcelHandler) *echo.Echo {
	return newTestServerWithStatusHandler(trackHandler, commands.UpdateParcelStatusCommandHandler{})
}

func newTestServerWithStatusHandler(
	trackHandler adapterhttp.TrackParcelHandler,
	statusHandler commands.UpdateParcelStatusCommandHandler,
) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := adapterhttp.NewServer(
		commands.CreateParcelCommandHandler{},
		commands.AssignCourierCommandHandler{},
		statusHandler,
		commands.CreateCourierCommandHandler{},
		commands.SetCourierStatusCommandHandler{},
		queries.GetParcelQueryHandler{},
		queries.GetCourierParcelsQueryHandler{},
		queries.GetCustomerParcelsQueryHandler{},
		queries.GetAvailableCouriersQueryHandler{},
		trackHandler,
		logger,
	)

	e := echo.New()
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")
	return e
}

func doRequest(e *echo.Echo, method, target, role, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if role != "" {
		req.Header.Set(adapterhttp.RoleHeader, role)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_RoleEnforcement(t *testing.T) {
	e := newTestServer(&MockTrackParcelHandler{})

	tests := []struct {
		name   string
		method string
		target string
		role   string
	}{
		{"create package needs customer or admin", http.MethodPost, "/api/v1/packages", "courier"},
		{"create package rejects missing role", http.MethodPost, "/api/v1/packages", ""},
		{"get package rejects courier", http.MethodGet, "/api/v1/packages/5c6f1b9e-8f07-4f0a-9f3e-2f6a3c1d4b5e", "courier"},
		{"assign needs admin", http.MethodPost, "/api/v1/packages/5c6f1b9e-8f07-4f0a-9f3e-2f6a3c1d4b5e/assign", "customer"},
		{"status update rejects customer", http.MethodPost, "/api/v1/packages/5c6f1b9e-8f07-4f0a-9f3e-2f6a3c1d4b5e/status", "customer"},
		{"create courier needs admin", http.MethodPost, "/api/v1/couriers", "courier"},
		{"available couriers needs admin", http.MethodGet, "/api/v1/couriers/available", "customer"},
		{"courier status rejects customer", http.MethodPost, "/api/v1/couriers/5c6f1b9e-8f07-4f0a-9f3e-2f6a3c1d4b5e/status", "customer"},
		{"worklist rejects customer", http.MethodGet, "/api/v1/couriers/5c6f1b9e-8f07-4f0a-9f3e-2f6a3c1d4b5e/packages", "customer"},
		{"customer history rejects courier", http.MethodGet, "/api/v1/customers/CUST-1/packages", "courier"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := doRequest(e, test.method, test.target, test.role, "")
			require.Equal(t, http.StatusForbidden, rec.Code)

			var response servers.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			require.Equal(t, http.StatusForbidden, response.Code)
		})
	}
}

func TestServer_TrackPackage(t *testing.T) {
	t.Run("returns the tracking view without any role header", func(t *testing.T) {
		deliveredAt := time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC)
		location := "Hub 7"
		trackHandler := &MockTrackParcelHandler{}
		trackHandler.On("Handle", mock.Anything, mock.Anything).Return(
			queries.TrackParcelQueryResponse{
				TrackingNumber:    "AB12345678",
				Status:            parcel.Delivered,
				EstimatedDelivery: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				ActualDeliveryAt:  &deliveredAt,
				History: []queries.TrackParcelHistoryEntry{
					{Status: parcel.Delivered, Location: &location, Timestamp: deliveredAt},
				},
			}, nil).Once()

		e := newTestServer(trackHandler)
		rec := doRequest(e, http.MethodGet, "/api/v1/tracking/AB12345678", "", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var view servers.TrackingInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		require.Equal(t, "AB12345678", view.TrackingNumber)
		require.Equal(t, "delivered", view.Status)
		require.Len(t, view.History, 1)
		require.Equal(t, "Hub 7", *view.History[0].Location)
		trackHandler.AssertExpectations(t)
	})

	t.Run("maps an unknown tracking number to 404", func(t *testing.T) {
		trackHandler := &MockTrackParcelHandler{}
		trackHandler.On("Handle", mock.Anything, mock.Anything).Return(
			queries.TrackParcelQueryResponse{},
			errs.NewObjectNotFoundError("trackingNumber", "AB12345678")).Once()

		e := newTestServer(trackHandler)
		rec := doRequest(e, http.MethodGet, "/api/v1/tracking/AB12345678", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects a malformed tracking number without touching the handler", func(t *testing.T) {
		trackHandler := &MockTrackParcelHandler{}

		e := newTestServer(trackHandler)
		rec := doRequest(e, http.MethodGet, "/api/v1/tracking/not-a-number", "", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		trackHandler.AssertNotCalled(t, "Handle")
	})
}

func TestServer_CreatePackage_Validation(t *testing.T) {
	e := newTestServer(&MockTrackParcelHandler{})

	t.Run("rejects a malformed body", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/v1/packages", "customer", "{not json")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/v1/packages", "customer", `{"senderRef":"CUST-1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// statusStubUoW serves one in-memory parcel to the status-update handler.
// Commit and the ledger append succeed, so the HTTP status code reflects
// the domain outcome alone.
type statusStubUoW struct {
	stored *parcel.Parcel
}

func (u *statusStubUoW) Begin(context.Context) error    { return nil }
func (u *statusStubUoW) Commit(context.Context) error   { return nil }
func (u *statusStubUoW) Rollback(context.Context) error { return nil }

func (u *statusStubUoW) ParcelRepository() ports.ParcelRepository {
	return stubParcelRepo{stored: u.stored}
}

func (u *statusStubUoW) CourierRepository() ports.CourierRepository { return nil }

func (u *statusStubUoW) TrackingEventRepository() ports.TrackingEventRepository {
	return stubLedger{}
}

type statusStubUoWFactory struct {
	uow commands.UoW
}

func (f statusStubUoWFactory) Create() commands.UoW { return f.uow }

type stubParcelRepo struct {
	stored *parcel.Parcel
}

func (r stubParcelRepo) Add(context.Context, *parcel.Parcel) error    { return nil }
func (r stubParcelRepo) Update(context.Context, *parcel.Parcel) error { return nil }

func (r stubParcelRepo) Get(context.Context, kernel.UUID) (*parcel.Parcel, error) {
	return r.stored, nil
}

func (r stubParcelRepo) GetByTrackingNumber(context.Context, kernel.TrackingNumber) (*parcel.Parcel, error) {
	return r.stored, nil
}

func (r stubParcelRepo) GetAllByCourier(context.Context, kernel.UUID) ([]*parcel.Parcel, error) {
	return nil, nil
}

type stubLedger struct{}

func (stubLedger) Add(context.Context, *tracking.Event) error { return nil }

func (stubLedger) GetAllByParcel(context.Context, kernel.UUID) ([]*tracking.Event, error) {
	return nil, nil
}

func TestServer_UpdatePackageStatus_AssignedWithoutCourierIsConflict(t *testing.T) {
	now := time.Now()
	pending, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewRandomTrackingNumber(),
		"sender-1", "receiver-1", "books",
		2.5, "30x20x10",
		"1 Origin St", "9 Destination Ave",
		now, now.Add(72*time.Hour),
	)
	require.NoError(t, err)

	handler := commands.NewUpdateParcelStatusCommandHandler(
		statusStubUoWFactory{uow: &statusStubUoW{stored: pending}})
	e := newTestServerWithStatusHandler(&MockTrackParcelHandler{}, handler)

	rec := doRequest(e, http.MethodPost,
		"/api/v1/packages/"+pending.ID().String()+"/status",
		"courier", `{"status":"assigned"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var response servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, http.StatusConflict, response.Code)
	require.Equal(t, parcel.Pending, pending.Status())
}

func TestServer_OperationTimeoutIsGatewayTimeout(t *testing.T) {
	trackHandler := &MockTrackParcelHandler{}
	trackHandler.On("Handle", mock.Anything, mock.Anything).Return(
		queries.TrackParcelQueryResponse{},
		fmt.Errorf("track parcel: %w", context.DeadlineExceeded)).Once()

	e := newTestServer(trackHandler)
	rec := doRequest(e, http.MethodGet, "/api/v1/tracking/AB12345678", "", "")

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var response servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, http.StatusGatewayTimeout, response.Code)
	trackHandler.AssertExpectations(t)
}

func TestServer_PathParameterBinding(t *testing.T) {
	e := newTestServer(&MockTrackParcelHandler{})

	t.Run("rejects a non uuid package id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/packages/not-a-uuid", "admin", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a non uuid courier id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/couriers/nope/packages", "courier", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
