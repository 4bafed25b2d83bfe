package apply_draft_action

import (
	"context"

	applyDraftAction "github.com/m04kA/SMC-OfficeBooking/internal/usecase/apply_draft_action"
)

type ApplyDraftActionUseCase interface {
	Execute(ctx context.Context, req *applyDraftAction.Request) (*applyDraftAction.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
