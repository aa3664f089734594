package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"medibook/internal/appointments/service"
	httputil "medibook/pkg/http"
	"medibook/pkg/logger"
	"medibook/pkg/model"
)

// CreatedResponse is the booking confirmation shown by the form.
type CreatedResponse struct {
	Message     string             `json:"message"`
	Appointment *model.Appointment `json:"appointment"`
}

type AppointmentHandler struct {
	service service.AppointmentService
	log     *logger.Logger
}

func NewAppointmentHandler(service service.AppointmentService, log *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, "Create", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	appointment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	h.writeJSON(w, "Create", http.StatusCreated, CreatedResponse{
		Message:     "Appointment booked successfully",
		Appointment: appointment,
	})
}

// Get serves every single-segment GET under the API base path. The booking
// API exposes the list and stats operations as fixed path segments in the
// same position as the id lookup, so the route parameter decides which
// operation runs.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("id") {
	case "getAppointments":
		h.list(w, r)
	case "stats":
		h.stats(w, r)
	default:
		h.getByID(w, r, ps.ByName("id"))
	}
}

func (h *AppointmentHandler) list(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := model.ListQuery{
		Treatment: params.Get("treatment"),
		Date:      params.Get("date"),
		Status:    params.Get("status"),
		SortBy:    params.Get("sortBy"),
		SortOrder: params.Get("sortOrder"),
	}

	appointments, err := h.service.List(r.Context(), query)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	h.writeJSON(w, "List", http.StatusOK, appointments)
}

func (h *AppointmentHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, "Stats", err)
		return
	}

	h.writeJSON(w, "Stats", http.StatusOK, stats)
}

func (h *AppointmentHandler) getByID(w http.ResponseWriter, r *http.Request, id string) {
	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	h.writeJSON(w, "GetByID", http.StatusOK, appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeJSON(w, "UpdateStatus", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), update.Status)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	h.writeJSON(w, "UpdateStatus", http.StatusOK, appointment)
}

func (h *AppointmentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/appointments/createAppointment", h.Create)
	router.GET("/api/appointments/:id", h.Get)
	router.PUT("/api/appointments/:id/status", h.UpdateStatus)
}

func (h *AppointmentHandler) writeJSON(w http.ResponseWriter, op string, statusCode int, data any) {
	if err := httputil.WriteJSON(w, statusCode, data); err != nil {
		h.log.Error("failed to write JSON response", "handler", op, "error", err)
	}
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "error", writeErr)
	}
}
