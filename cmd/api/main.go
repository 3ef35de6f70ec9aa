package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
	"github.com/hvacwidget/scheduler-backend-go/internal/config"
	appHTTP "github.com/hvacwidget/scheduler-backend-go/internal/handler/http"
	"github.com/hvacwidget/scheduler-backend-go/internal/repository/jsonfile"
	deviceService "github.com/hvacwidget/scheduler-backend-go/internal/service/device"
	scheduleService "github.com/hvacwidget/scheduler-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hvac-scheduler"),
		slog.String("env", cfg.App.Env),
		slog.String("instance", uuid.NewString()),
	)

	documentStore := jsonfile.NewDocumentStore(cfg.Storage.SchedulesFile)
	deviceConfigStore := jsonfile.NewDeviceConfigStore(cfg.Storage.DeviceConfigFile)

	schedService := scheduleService.NewScheduleService(documentStore, logger)
	devService := deviceService.NewConfigService(deviceConfigStore, logger)

	scheduleHandler := appHTTP.NewScheduleHandler(schedService)
	deviceHandler := appHTTP.NewDeviceHandler(devService)

	router := appHTTP.NewRouter(logger, scheduleHandler, deviceHandler, cfg.App.FrontendURL)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
