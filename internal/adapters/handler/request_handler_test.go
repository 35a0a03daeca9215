package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/middleware"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

func TestListRequests_Envelope(t *testing.T) {
	svc := &mockRequestService{
		ListFunc: func(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error) {
			return []domain.BloodRequest{
				{ID: "req-1", Status: domain.RequestPending},
			}, nil
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/blood-requests", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data []domain.BloodRequest `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "req-1" {
		t.Errorf("unexpected payload: %+v", envelope.Data)
	}
}

func TestListRequests_FilterPassthrough(t *testing.T) {
	var got ports.RequestFilter
	svc := &mockRequestService{
		ListFunc: func(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error) {
			got = filter
			return nil, nil
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/blood-requests?status=pending&blood_group=O-&search=city", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if got.Status != domain.RequestPending || got.BloodGroup != "O-" || got.Search != "city" {
		t.Errorf("filter not passed through: %+v", got)
	}
}

func TestCreateRequest(t *testing.T) {
	svc := &mockRequestService{
		CreateFunc: func(ctx context.Context, userID string, in ports.CreateRequestInput) (*domain.BloodRequest, error) {
			if userID != "user-1" {
				t.Errorf("owner must come from the session, got %q", userID)
			}
			return &domain.BloodRequest{ID: "req-1", UserID: userID, Status: domain.RequestPending}, nil
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	body := `{"hospital":"City General Hospital","blood_type":"O-","units":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/blood-requests", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "user-1")
	rec := httptest.NewRecorder()
	h.Create(rec, req.WithContext(ctx))

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateRequest_ValidationError(t *testing.T) {
	svc := &mockRequestService{
		CreateFunc: func(ctx context.Context, userID string, in ports.CreateRequestInput) (*domain.BloodRequest, error) {
			return nil, domain.Invalid("units must be between 1 and 10")
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	body := `{"hospital":"City General Hospital","blood_type":"O-","units":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/blood-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "units must be between 1 and 10" {
		t.Errorf("validation message must pass through verbatim, got %q", resp.Message)
	}
}

func newStatusUpdateRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/blood-requests/"+id+"/status", strings.NewReader(body))
	req.SetPathValue("id", id)
	return req
}

func TestUpdateRequestStatus_OK(t *testing.T) {
	svc := &mockRequestService{
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.RequestStatus) error {
			if id != "req-1" || status != domain.RequestSuccessful {
				t.Errorf("unexpected transition: %s -> %s", id, status)
			}
			return nil
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, newStatusUpdateRequest("req-1", `{"status":"successful"}`))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateRequestStatus_Conflict(t *testing.T) {
	svc := &mockRequestService{
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.RequestStatus) error {
			return domain.ErrInvalidTransition
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, newStatusUpdateRequest("req-1", `{"status":"rejected"}`))

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	svc := &mockRequestService{
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.RequestStatus) error {
			return domain.ErrNotFound
		},
	}
	h := NewBloodRequestHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, newStatusUpdateRequest("ghost", `{"status":"successful"}`))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
