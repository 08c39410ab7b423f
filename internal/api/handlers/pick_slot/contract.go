package pick_slot

import (
	"context"

	pickSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/pick_slot"
)

type PickSlotUseCase interface {
	Execute(ctx context.Context, req *pickSlot.Request) (*pickSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
