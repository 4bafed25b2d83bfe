package apply_draft_action

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// Request модель запроса на изменение черновика
type Request struct {
	Draft  *domain.BookingDraft // Текущий черновик; nil означает новый черновик
	Action domain.DraftAction   // Действие пользователя
}

// Response модель ответа с новым черновиком и допустимыми вариантами выбора
type Response struct {
	Draft           domain.BookingDraft // Черновик после действия
	Eligibility     domain.Eligibility  // Допустимые сотрудники, отделы и места
	Dates           []string            // Даты к бронированию; пусто, если набор некорректен
	DateError       string              // Причина, по которой набор дат некорректен
	EmployeeOptions []string            // Подписи сотрудников для поиска ("код - имя фамилия")
}
