package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gruas_rd/internal/adapter/http/handlers/mocks"
	"gruas_rd/internal/adapter/http/middleware"
	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func negotiationRouter(h *NegotiationHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequireIdentity(middleware.NewHeaderIdentityResolver()))
	r.GET("/v1/negotiations/:service_id", h.GetNegotiation)
	r.POST("/v1/negotiations/:service_id/propose", h.ProposeAmount)
	r.POST("/v1/negotiations/:service_id/confirm", h.ConfirmAmount)
	r.POST("/v1/negotiations/:service_id/accept", h.AcceptAmount)
	r.POST("/v1/negotiations/:service_id/reject", h.RejectAmount)
	r.POST("/v1/negotiations/:service_id/cancel", h.CancelService)
	return r
}

func asDriver(req *http.Request, id string) {
	req.Header.Set("X-Actor-Id", id)
	req.Header.Set("X-Actor-Role", "conductor")
}

func asClient(req *http.Request, id string) {
	req.Header.Set("X-Actor-Id", id)
	req.Header.Set("X-Actor-Role", "cliente")
}

func TestNegotiationHandler_GetNegotiation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().GetByServiceID(gomock.Any(), "svc-1").Return(entities.Negotiation{}, usecase.ErrNegotiationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations/svc-1", nil)
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		a := decimal.NewFromInt(5000)
		uc.EXPECT().GetByServiceID(gomock.Any(), "svc-1").Return(entities.Negotiation{
			ID: "neg-1", ServiceID: "svc-1", Attempt: 1,
			State: entities.NegotiationStatePropuesto, ProposedAmount: &a, Version: 1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations/svc-1", nil)
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["state"] != "propuesto" || body["proposed_amount"] != "5000.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestNegotiationHandler_ProposeAmount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client cannot propose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/propose", bytes.NewBufferString(`{"amount":"5000"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/propose", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount outside limits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().ProposeAmount(gomock.Any(), "svc-1", "driver-1", gomock.Any(), int64(0)).Return(entities.Negotiation{}, usecase.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/propose", bytes.NewBufferString(`{"amount":"100"}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		a := decimal.NewFromInt(5000)
		uc.EXPECT().ProposeAmount(gomock.Any(), "svc-1", "driver-1", gomock.Any(), int64(0)).DoAndReturn(
			func(_ any, _, _ string, amount decimal.Decimal, _ int64) (entities.Negotiation, error) {
				if !amount.Equal(decimal.NewFromInt(5000)) {
					t.Fatalf("expected 5000, got %s", amount)
				}
				return entities.Negotiation{
					ID: "neg-1", ServiceID: "svc-1", Attempt: 1,
					State: entities.NegotiationStatePropuesto, ProposedAmount: &a, Version: 1,
					LastActor: entities.ActorRoleConductor,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/propose", bytes.NewBufferString(`{"amount":"5000","expected_version":0}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["version"] != float64(1) || body["proposed_amount"] != "5000.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestNegotiationHandler_Actions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().ConfirmAmount(gomock.Any(), "svc-1", "driver-1", int64(1)).Return(entities.Negotiation{
			ID: "neg-1", State: entities.NegotiationStateConfirmado, Version: 2,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/confirm", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("confirm version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().ConfirmAmount(gomock.Any(), "svc-1", "driver-1", int64(1)).Return(entities.Negotiation{}, usecase.ErrVersionConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/confirm", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accept is a client action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/accept", bytes.NewBufferString(`{"expected_version":2}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().AcceptAmount(gomock.Any(), "svc-1", "client-1", int64(2)).Return(entities.Negotiation{
			ID: "neg-1", State: entities.NegotiationStateAceptado, Version: 3,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/accept", bytes.NewBufferString(`{"expected_version":2}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject unauthorized transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().RejectAmount(gomock.Any(), "svc-1", "client-1", int64(1)).Return(entities.Negotiation{}, usecase.ErrUnauthorizedTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/reject", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().CancelService(gomock.Any(), "svc-1", "client-1", int64(1)).Return(entities.Negotiation{
			ID: "neg-1", State: entities.NegotiationStateCancelado, Version: 2,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/cancel", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc))

		uc.EXPECT().ConfirmAmount(gomock.Any(), "svc-1", "driver-1", int64(1)).Return(entities.Negotiation{}, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations/svc-1/confirm", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
