package appointment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra/clinicdesk/internal/handler/appointment"
	"github.com/dmehra/clinicdesk/internal/service/booking"
	"github.com/dmehra/clinicdesk/internal/storage"
	"github.com/dmehra/clinicdesk/internal/store"
	"github.com/dmehra/clinicdesk/pkg/metrics"
	"github.com/dmehra/clinicdesk/pkg/validator"
)

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	st := storage.NewMemoryStore()

	directory, err := store.NewDoctorDirectory(ctx, st)
	require.NoError(t, err)
	catalog, err := store.NewServiceCatalog(ctx, st)
	require.NoError(t, err)
	ledger, err := store.NewAppointmentLedger(ctx, st)
	require.NoError(t, err)

	svc := booking.NewService(ledger, directory, catalog, metrics.New("test", prometheus.NewRegistry()))
	h := appointment.NewHandler(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestBookDoctorEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w, resp := doRequest(t, engine, http.MethodPost, "/api/v1/appointments/doctor", `{
		"doctor_id": 1,
		"patient_name": "Asha",
		"age": "34",
		"gender": "female",
		"phone": "9876500000",
		"date": "2026-09-10",
		"time": "10:30 AM"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)

	var apt map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &apt))
	assert.Equal(t, float64(1), apt["id"])
	assert.Equal(t, "Pending", apt["status"])
	assert.Equal(t, "Dr. Asha Nair", apt["doctor_name"])
}

func TestBookDoctorValidation(t *testing.T) {
	engine := newTestRouter(t)

	w, resp := doRequest(t, engine, http.MethodPost, "/api/v1/appointments/doctor", `{
		"doctor_id": 1,
		"patient_name": "Asha"
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestBookUnknownDoctorIs404(t *testing.T) {
	engine := newTestRouter(t)

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/appointments/doctor", `{
		"doctor_id": 9999,
		"patient_name": "Asha",
		"phone": "9876500000",
		"date": "2026-09-10",
		"time": "10:30 AM"
	}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	_, _ = doRequest(t, engine, http.MethodPost, "/api/v1/appointments/service", `{
		"service_id": 2,
		"patient_name": "Ravi",
		"phone": "9876500001",
		"date": "2026-09-11",
		"time": "11:00 AM"
	}`)

	w, resp := doRequest(t, engine, http.MethodPatch, "/api/v1/appointments/1/status", `{"status": "Completed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var apt map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &apt))
	assert.Equal(t, "Completed", apt["status"])
}

func TestUpdateStatusUnknownIDSucceedsWithNullData(t *testing.T) {
	engine := newTestRouter(t)

	w, resp := doRequest(t, engine, http.MethodPatch, "/api/v1/appointments/999/status", `{"status": "Confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.Data)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	engine := newTestRouter(t)

	w, _ := doRequest(t, engine, http.MethodPatch, "/api/v1/appointments/1/status", `{"status": "Archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointmentsFilterByKind(t *testing.T) {
	engine := newTestRouter(t)

	_, _ = doRequest(t, engine, http.MethodPost, "/api/v1/appointments/doctor", `{
		"doctor_id": 1,
		"patient_name": "Asha",
		"phone": "9876500000",
		"date": "2026-09-10",
		"time": "10:30 AM"
	}`)
	_, _ = doRequest(t, engine, http.MethodPost, "/api/v1/appointments/service", `{
		"service_id": 2,
		"patient_name": "Ravi",
		"phone": "9876500001",
		"date": "2026-09-11",
		"time": "11:00 AM"
	}`)

	w, resp := doRequest(t, engine, http.MethodGet, "/api/v1/appointments?kind=service", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ravi", list[0]["patient_name"])
}
