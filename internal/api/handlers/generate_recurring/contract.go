package generate_recurring

import (
	"context"

	generateRecurring "github.com/m04kA/SMC-AvailabilityService/internal/usecase/generate_recurring"
)

type GenerateRecurringUseCase interface {
	Execute(ctx context.Context, req *generateRecurring.Request) (*generateRecurring.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
