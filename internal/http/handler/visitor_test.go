package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/internal/http/handler"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/service"
)

var _ = Describe("VisitorHandler", func() {
	var (
		router    *gin.Engine
		approvals *mockVisitorApprovalService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		approvals = &mockVisitorApprovalService{}
		h := handler.NewVisitorHandler(approvals)
		router.POST("/visitors/requests", h.CreateRequest)
	})

	It("returns 201 with the pending approval", func() {
		approvals.createRequestFn = func(_ context.Context, params service.VisitorRequestParams) (*service.VisitorRequestResult, error) {
			return &service.VisitorRequestResult{
				Approval: &model.VisitorApproval{
					ID:           10,
					TenantID:     params.TenantID,
					VisitorPhone: params.VisitorPhone,
					Status:       model.ApprovalStatusPending,
					ExpiresAt:    time.Now().Add(2 * time.Hour),
				},
				NotificationSent: true,
			}, nil
		}

		body, _ := json.Marshal(map[string]any{
			"tenant_id":     100,
			"visitor_phone": "+15551112222",
		})

		req := httptest.NewRequest(http.MethodPost, "/visitors/requests", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["notification_sent"]).To(Equal(true))
		Expect(resp["approval"].(map[string]any)["status"]).To(Equal("pending"))
	})

	It("returns 400 when the body is incomplete", func() {
		body, _ := json.Marshal(map[string]any{"tenant_id": 100})

		req := httptest.NewRequest(http.MethodPost, "/visitors/requests", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown tenant", func() {
		approvals.createRequestFn = func(_ context.Context, _ service.VisitorRequestParams) (*service.VisitorRequestResult, error) {
			return nil, service.ErrTenantNotFound
		}

		body, _ := json.Marshal(map[string]any{
			"tenant_id":     999,
			"visitor_phone": "+15551112222",
		})

		req := httptest.NewRequest(http.MethodPost, "/visitors/requests", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
