package http

import (
	"encoding/json"
	"net/http"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/schedule"
	"github.com/hvacwidget/scheduler-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetSchedules(w http.ResponseWriter, r *http.Request)
	SaveSchedules(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetSchedules implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetSchedules(w http.ResponseWriter, r *http.Request) {
	doc, err := h.scheduleService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

// SaveSchedules implements ScheduleHandler. The body replaces the stored
// document wholesale; partial updates are the client's job to merge first.
func (h *scheduleHandlerImpl) SaveSchedules(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	var doc json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	// The body must be a single JSON value; trailing data means a
	// malformed request, not a second document.
	if dec.More() {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if err := h.scheduleService.ReplaceAll(r.Context(), doc); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedules saved successfully", nil)
}
