package create_booking

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// Request модель запроса на создание бронирований по черновику
type Request struct {
	Draft domain.BookingDraft // Черновик бронирования
}

// Response модель ответа с созданными бронированиями
type Response struct {
	IDs   []string            // ID созданных бронирований
	Dates []string            // Забронированные даты (YYYY-MM-DD, по возрастанию)
	Draft domain.BookingDraft // Черновик после отправки: цель, комментарий и даты сброшены
}
