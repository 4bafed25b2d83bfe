package apply_draft_action

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// UseCase use case для применения действия пользователя к черновику бронирования
type UseCase struct {
	lookups      LookupProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(lookups LookupProvider, logger Logger) *UseCase {
	return &UseCase{
		lookups:      lookups,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет действие и возвращает новый черновик.
// При ошибке действия черновик не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	today := types.DateOf(uc.timeProvider.Now())
	lookup := uc.lookups.Snapshot()

	// 1. Берём текущий черновик или создаём новый, присланный черновик нормализуем
	draft := domain.NewDraft(today)
	if req.Draft != nil {
		draft = req.Draft.Normalize(lookup)
	}

	// 2. Применяем действие
	next, err := draft.Apply(lookup, req.Action, today)
	if err != nil {
		uc.logger.Warn("ApplyDraftAction: action=%s value=%q rejected: %v", req.Action.Type, req.Action.Value, err)
		return nil, err
	}

	// 3. Пересчитываем допустимые варианты
	eligibility := next.Eligibility(lookup)
	resp := &Response{
		Draft:           next,
		Eligibility:     eligibility,
		Dates:           []string{},
		EmployeeOptions: make([]string, 0, len(eligibility.Employees)),
	}
	for _, e := range eligibility.Employees {
		resp.EmployeeOptions = append(resp.EmployeeOptions, domain.FormatEmployeeOption(e))
	}

	// 4. Предпросмотр дат без ошибки запроса
	if dates, err := next.DateSet(); err != nil {
		resp.DateError = err.Error()
	} else {
		resp.Dates = domain.DateStrings(dates)
	}

	return resp, nil
}
