package get_timeline

import (
	"time"

	"massageshop/internal/timeline"
)

// Request модель запроса на построение таймлайна
type Request struct {
	Date string // Дата дня, "2026-08-29"
}

// Response модель ответа с раскладкой дня
type Response struct {
	Date   time.Time            // Дата дня
	Params timeline.GridParams  // Параметры сетки слотов
	Layout *timeline.Layout     // Полная раскладка дня
}
