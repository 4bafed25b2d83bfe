package apply_draft_action

import (
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	applyDraftAction "github.com/m04kA/SMC-OfficeBooking/internal/usecase/apply_draft_action"
)

// DraftActionRequest HTTP request model
type DraftActionRequest struct {
	Draft  *domain.BookingDraft `json:"draft"`
	Action domain.DraftAction   `json:"action"`
}

// DraftResponse HTTP response model
type DraftResponse struct {
	Draft           domain.BookingDraft `json:"draft"`
	Eligibility     domain.Eligibility  `json:"eligibility"`
	Dates           []string            `json:"dates"`
	DateError       string              `json:"date_error,omitempty"`
	EmployeeOptions []string            `json:"employee_options"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DraftActionRequest) ToUseCaseRequest() *applyDraftAction.Request {
	return &applyDraftAction.Request{
		Draft:  r.Draft,
		Action: r.Action,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyDraftAction.Response) *DraftResponse {
	return &DraftResponse{
		Draft:           resp.Draft,
		Eligibility:     resp.Eligibility,
		Dates:           resp.Dates,
		DateError:       resp.DateError,
		EmployeeOptions: resp.EmployeeOptions,
	}
}
