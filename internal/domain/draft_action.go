package domain

import "github.com/m04kA/SMC-OfficeBooking/pkg/types"

// ActionType тип действия пользователя над черновиком
type ActionType string

const (
	ActionSelectOffice     ActionType = "select_office"
	ActionSelectDepartment ActionType = "select_department"
	ActionSelectEmployee   ActionType = "select_employee"
	ActionSearchEmployee   ActionType = "search_employee"
	ActionSelectSeat       ActionType = "select_seat"
	ActionSelectPurpose    ActionType = "select_purpose"
	ActionSetNote          ActionType = "set_note"
	ActionSetMode          ActionType = "set_mode"
	ActionSetRange         ActionType = "set_range"
	ActionAddDate          ActionType = "add_date"
	ActionRemoveDate       ActionType = "remove_date"
	ActionReset            ActionType = "reset"
)

// DraftAction действие пользователя. Value содержит идентификатор, текст или дату,
// Start и End используются только для set_range.
type DraftAction struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value"`
	Start string     `json:"start"`
	End   string     `json:"end"`
}

// Apply применяет действие к черновику и возвращает новый черновик
func (d BookingDraft) Apply(l *Lookup, action DraftAction, today types.Date) (BookingDraft, error) {
	switch action.Type {
	case ActionSelectOffice:
		return d.SelectOffice(l, action.Value)
	case ActionSelectDepartment:
		return d.SelectDepartment(l, action.Value)
	case ActionSelectEmployee:
		return d.SelectEmployee(l, action.Value)
	case ActionSearchEmployee:
		return d.SearchEmployee(l, action.Value), nil
	case ActionSelectSeat:
		return d.SelectSeat(l, action.Value)
	case ActionSelectPurpose:
		return d.SelectPurpose(l, action.Value)
	case ActionSetNote:
		return d.SetNote(action.Value), nil
	case ActionSetMode:
		return d.SetMode(BookingMode(action.Value), today)
	case ActionSetRange:
		return d.SetRange(action.Start, action.End), nil
	case ActionAddDate:
		return d.AddDate(action.Value)
	case ActionRemoveDate:
		return d.RemoveDate(action.Value), nil
	case ActionReset:
		return d.Reset(today), nil
	default:
		return d, ErrUnknownAction
	}
}
