package add_window

import (
	"context"

	addWindow "github.com/m04kA/SMC-AvailabilityService/internal/usecase/add_window"
)

type AddWindowUseCase interface {
	Execute(ctx context.Context, req *addWindow.Request) (*addWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
