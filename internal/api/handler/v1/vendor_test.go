package v1

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/service"
)

func vendorRouter(events *mockEventService, svc *mockVendorService) *gin.Engine {
	h := NewVendorHandler(events, svc)
	router := newTestRouter()
	router.POST("/vendor-applications", h.HandleSubmit)
	router.GET("/vendor-applications", h.HandleList)
	router.GET("/vendor-applications/export", h.HandleExport)
	router.GET("/vendor-applications/:applicationID", h.HandleGet)
	router.PATCH("/vendor-applications/:applicationID/status", h.HandleUpdateStatus)
	return router
}

func vendorPayload() map[string]any {
	return map[string]any{
		"business_name":                        "Taco Loco",
		"contact_person":                       "Olena Shevchenko",
		"email":                                "olena@example.com",
		"phone_number":                         "+380441234567",
		"company_name":                         "Taco Loco LLC",
		"business_license_url":                 "https://files.example.com/license.pdf",
		"hygiene_inspection_certification_url": "https://files.example.com/hygiene.pdf",
		"liability_insurance_url":              "https://files.example.com/insurance.pdf",
		"dishes":                               []map[string]any{{"name": "Al pastor", "price": 120.5}},
		"employees": []map[string]any{{
			"name":                   "Ivan",
			"health_certificate_url": "https://files.example.com/h.pdf",
			"social_insurance_url":   "https://files.example.com/s.pdf",
		}},
		"own_truck":  false,
		"truck_info": map[string]any{
			"photo_url":                      "https://files.example.com/truck.jpg",
			"length":                         6.5,
			"width":                          2.4,
			"height":                         3.1,
			"electro_mechanical_license_url": "https://files.example.com/em.pdf",
		},
	}
}

func TestVendorHandler_HandleSubmit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		events := new(mockEventService)
		events.On("GetActive", mock.Anything).Return(activeEvent(), nil).Once()

		svc := new(mockVendorService)
		svc.On("Submit", mock.Anything, activeEvent(), mock.MatchedBy(func(app domain.VendorApplication) bool {
			return app.BusinessName == "Taco Loco" && app.TruckInfo == nil && len(app.Dishes) == 1
		})).Return(domain.VendorApplication{Envelope: domain.Envelope{ID: "26VE01KYV"}}, nil).Once()

		rec := doRequest(vendorRouter(events, svc), http.MethodPost, "/vendor-applications", vendorPayload())
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "26VE01KYV", body["application_id"])
		svc.AssertExpectations(t)
	})

	t.Run("no active event", func(t *testing.T) {
		events := new(mockEventService)
		events.On("GetActive", mock.Anything).Return(nil, nil).Once()

		svc := new(mockVendorService)
		svc.On("Submit", mock.Anything, (*domain.Event)(nil), mock.Anything).
			Return(domain.VendorApplication{}, service.ErrNoActiveEvent).Once()

		rec := doRequest(vendorRouter(events, svc), http.MethodPost, "/vendor-applications", vendorPayload())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No active event found")
	})

	t.Run("invalid payload", func(t *testing.T) {
		payload := vendorPayload()
		payload["dishes"] = []map[string]any{}

		svc := new(mockVendorService)
		rec := doRequest(vendorRouter(new(mockEventService), svc), http.MethodPost, "/vendor-applications", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVendorHandler_HandleGet(t *testing.T) {
	svc := new(mockVendorService)
	svc.On("GetApplication", mock.Anything, "26VE01KYV").
		Return(domain.VendorApplication{Envelope: domain.Envelope{ID: "26VE01KYV"}, BusinessName: "Taco Loco"}, nil).Once()
	svc.On("GetApplication", mock.Anything, "26VE99KYV").
		Return(domain.VendorApplication{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrApplicationNotFound)).Once()

	router := vendorRouter(new(mockEventService), svc)

	rec := doRequest(router, http.MethodGet, "/vendor-applications/26VE01KYV", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Taco Loco")

	rec = doRequest(router, http.MethodGet, "/vendor-applications/26VE99KYV", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVendorHandler_HandleUpdateStatus(t *testing.T) {
	svc := new(mockVendorService)
	svc.On("UpdateStatus", mock.Anything, domain.StatusChange{ApplicationID: "26VE01KYV", Status: domain.StatusRejected, Reason: "Menu overlaps"}).
		Return(domain.VendorApplication{Envelope: domain.Envelope{ID: "26VE01KYV", Status: domain.StatusRejected}}, nil).Once()
	svc.On("UpdateStatus", mock.Anything, domain.StatusChange{ApplicationID: "26VE99KYV", Status: domain.StatusApproved}).
		Return(domain.VendorApplication{}, service.ErrApplicationNotFound).Once()

	router := vendorRouter(new(mockEventService), svc)

	rec := doRequest(router, http.MethodPatch, "/vendor-applications/26VE01KYV/status", map[string]string{"status": "rejected", "reason": "Menu overlaps"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)

	rec = doRequest(router, http.MethodPatch, "/vendor-applications/26VE99KYV/status", map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPatch, "/vendor-applications/26VE01KYV/status", map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertExpectations(t)
}

func TestVendorHandler_HandleList_InvalidEventID(t *testing.T) {
	rec := doRequest(vendorRouter(new(mockEventService), new(mockVendorService)), http.MethodGet, "/vendor-applications?eventID=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVendorHandler_HandleExport(t *testing.T) {
	event := activeEvent()
	svc := new(mockVendorService)
	svc.On("ListApplications", mock.Anything, &event.ID).Return([]domain.VendorApplication{
		{
			Envelope:     domain.Envelope{ID: "26VE01KYV", Status: domain.StatusPending, CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			BusinessName: "Taco Loco",
		},
	}, nil).Once()

	rec := doRequest(vendorRouter(new(mockEventService), svc), http.MethodGet, "/vendor-applications/export?eventID="+event.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "vendor-applications-")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "26VE01KYV", records[1][0])
	assert.Equal(t, "Taco Loco", records[1][2])
}
