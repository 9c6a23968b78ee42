package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kilincfaruk/FuatAtolye/internal/jobs"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

type stubJobService struct {
	submitFn func(ctx context.Context, input jobs.JobInput) (*models.JobEntry, error)
	updateFn func(ctx context.Context, id uuid.UUID, input jobs.JobInput) (*models.JobEntry, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	listFn   func(ctx context.Context) ([]models.JobEntry, error)
}

func (s stubJobService) Submit(ctx context.Context, input jobs.JobInput) (*models.JobEntry, error) {
	return s.submitFn(ctx, input)
}

func (s stubJobService) Get(ctx context.Context, id uuid.UUID) (*models.JobEntry, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
}

func (s stubJobService) List(ctx context.Context) ([]models.JobEntry, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s stubJobService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.JobEntry, error) {
	return nil, nil
}

func (s stubJobService) Update(ctx context.Context, id uuid.UUID, input jobs.JobInput) (*models.JobEntry, error) {
	return s.updateFn(ctx, id, input)
}

func (s stubJobService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestJobCreate(t *testing.T) {
	customerID := uuid.New()
	jobID := uuid.New()
	svc := stubJobService{
		submitFn: func(ctx context.Context, input jobs.JobInput) (*models.JobEntry, error) {
			if input.CustomerID != customerID {
				t.Fatalf("unexpected customer id %s", input.CustomerID)
			}
			if input.Date.Format("2006-01-02") != "2024-03-10" {
				t.Fatalf("unexpected date %s", input.Date)
			}
			return &models.JobEntry{ID: jobID, CustomerID: customerID, JobType: input.JobType}, nil
		},
	}

	body := `{"customer_id":"` + customerID.String() + `","quantity":2,"job_type":"YÜZÜK KÜÇÜLME","price":"500","is_paid":false,"date":"2024-03-10"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	JobCreate(svc, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data models.JobEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != jobID {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestJobCreateLinkageWarning(t *testing.T) {
	customerID := uuid.New()
	jobID := uuid.New()
	svc := stubJobService{
		submitFn: func(ctx context.Context, input jobs.JobInput) (*models.JobEntry, error) {
			job := &models.JobEntry{ID: jobID, CustomerID: customerID, IsPaid: true}
			return job, pkgerrors.New(pkgerrors.CodeLinkageWarning, "job saved but auto payment could not be created")
		},
	}

	body := `{"customer_id":"` + customerID.String() + `","quantity":1,"job_type":"MİNE","price":"750","is_paid":true,"date":"2024-03-10"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	JobCreate(svc, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data    models.JobEntry `json:"data"`
		Warning string          `json:"warning"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != jobID {
		t.Fatalf("expected saved job in payload, got %+v", envelope.Data)
	}
	if envelope.Warning == "" {
		t.Fatal("expected warning message in envelope")
	}
}

func TestJobCreateRejectsBadDate(t *testing.T) {
	svc := stubJobService{
		submitFn: func(ctx context.Context, input jobs.JobInput) (*models.JobEntry, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	}

	body := `{"customer_id":"` + uuid.NewString() + `","quantity":1,"price":"100","date":"10.03.2024"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	JobCreate(svc, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestJobCreateRejectsUnknownFields(t *testing.T) {
	svc := stubJobService{
		submitFn: func(ctx context.Context, input jobs.JobInput) (*models.JobEntry, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	}

	body := `{"customer_id":"` + uuid.NewString() + `","date":"2024-03-10","bogus":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	JobCreate(svc, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestJobDeleteLinkageWarning(t *testing.T) {
	svc := stubJobService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeLinkageWarning, "job deleted but auto payment could not be removed")
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req = withURLParam(req, "jobID", uuid.NewString())
	resp := httptest.NewRecorder()
	JobDelete(svc, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Warning string `json:"warning"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Warning == "" {
		t.Fatal("expected warning message in envelope")
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
