package http

import (
	"net/http"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/device"
	"github.com/hvacwidget/scheduler-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	configService device.ConfigService
}

func NewDeviceHandler(configService device.ConfigService) DeviceHandler {
	return &deviceHandlerImpl{
		configService: configService,
	}
}

// GetConfig implements DeviceHandler.
func (h *deviceHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}
