package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gruas_rd/internal/adapter/http/handlers/mocks"
	"gruas_rd/internal/adapter/http/middleware"
	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serviceRouter(h *ServiceHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequireIdentity(middleware.NewHeaderIdentityResolver()))
	r.POST("/v1/services", h.CreateService)
	r.GET("/v1/services/:service_id", h.GetService)
	return r
}

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("driver cannot create services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRouter(NewServiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"category":"extraccion"}`))
		req.Header.Set("Content-Type", "application/json")
		asDriver(req, "driver-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRouter(NewServiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRouter(NewServiceHandler(uc))

		uc.EXPECT().CreateService(gomock.Any(), "client-1", entities.ServiceCategory("grua_aerea"), entities.ServiceSubtype(""), "").Return(entities.Service{}, usecase.ErrInvalidServiceCategory)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"category":"grua_aerea"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRouter(NewServiceHandler(uc))

		uc.EXPECT().CreateService(gomock.Any(), "client-1", entities.ServiceCategoryExtraccion, entities.ServiceSubtype(""), "Carro en zanja").Return(entities.Service{
			ID: "svc-1", ClientID: "client-1", Category: entities.ServiceCategoryExtraccion,
			Description: "Carro en zanja", RequiresNegotiation: true,
			Status: entities.ServiceStatusPendiente,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"category":"extraccion","description":"Carro en zanja"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["requires_negotiation"] != true || body["status"] != "pendiente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRouter(NewServiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "svc-9").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-9", nil)
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
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRouter(NewServiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{
			ID: "svc-1", ClientID: "client-1", Category: entities.ServiceCategoryRemolqueEstandar,
			Status: entities.ServiceStatusPendiente,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
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
		if body["category"] != "remolque_estandar" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
