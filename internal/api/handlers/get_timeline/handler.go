package get_timeline

import (
	"errors"
	"net/http"

	"massageshop/internal/api/handlers"
	getTimeline "massageshop/internal/usecase/get_timeline"
)

const (
	msgMissingDate = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/timeline?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /admin/timeline - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeline.Request{Date: date})
	if err != nil {
		if errors.Is(err, getTimeline.ErrInvalidDate) {
			h.logger.Warn("GET /admin/timeline - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/timeline - Failed to build timeline: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/timeline - Timeline built: date=%s, lanes=%d", date, result.Layout.LaneCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
