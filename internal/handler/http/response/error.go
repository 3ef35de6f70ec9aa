package response

import (
	"errors"
	"net/http"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/device"
	"github.com/hvacwidget/scheduler-backend-go/internal/domain/schedule"
)

// HandleError maps domain errors to HTTP responses. The service layer has
// already logged the underlying cause, so clients only see a coarse
// failure message here.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Schedule domain errors
	case errors.Is(err, schedule.ErrMalformedDocument),
		errors.Is(err, schedule.ErrUnrecognizedShape):
		InternalServerError(w, "Failed to retrieve schedules")

	// Device domain errors
	case errors.Is(err, device.ErrMalformedConfig):
		InternalServerError(w, "Failed to get device configuration")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
