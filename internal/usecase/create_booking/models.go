package create_booking

import (
	"time"

	"massageshop/pkg/types"
)

// Request модель запроса на создание бронирования.
// Теги validate описывают форматные проверки цепочки валидации;
// семантические проверки (дата не в прошлом, услуга существует) — в usecase.
type Request struct {
	ServiceID     int64  `validate:"required,gt=0"`          // ID услуги
	Date          string `validate:"required"`               // Дата бронирования, "2026-08-29"
	StartTime     string `validate:"required"`               // Время начала, "10:00"
	CustomerName  string `validate:"required,min=2,max=100"` // Имя клиента
	CustomerEmail string `validate:"required,email"`         // Email клиента
	CustomerPhone string `validate:"required,min=10"`        // Телефон клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	CustomerPhone string // Телефон клиента

	CreatedAt time.Time // Время создания
}
