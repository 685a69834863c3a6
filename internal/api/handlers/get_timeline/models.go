package get_timeline

import (
	"massageshop/internal/domain"
	getTimeline "massageshop/internal/usecase/get_timeline"
)

// TimelineResponse HTTP response model: полная раскладка дня
type TimelineResponse struct {
	Date            string                   `json:"date"`
	Grid            GridResponse             `json:"grid"`
	Slots           []SlotResponse           `json:"slots"`
	Bookings        []LanedBookingResponse   `json:"bookings"`
	LaneCount       int                      `json:"laneCount"`
	AvailableRanges []AvailableRangeResponse `json:"availableRanges"`
	Blocks          []BlockResponse          `json:"blocks"`
	Heights         []string                 `json:"heights"`
	Unplaced        []BookingInfoResponse    `json:"unplaced"`
}

// GridResponse параметры сетки слотов
type GridResponse struct {
	StartHour           int `json:"startHour"`
	EndHour             int `json:"endHour"`
	SlotIntervalMinutes int `json:"slotIntervalMinutes"`
	SlotCount           int `json:"slotCount"`
}

// SlotResponse один слот сетки
type SlotResponse struct {
	Index      int     `json:"index"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	BookingIDs []int64 `json:"bookingIds"`
}

// BookingInfoResponse данные бронирования для отображения
type BookingInfoResponse struct {
	ID              int64   `json:"id"`
	ServiceName     string  `json:"serviceName"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
}

// LanedBookingResponse бронирование с назначенной дорожкой
type LanedBookingResponse struct {
	BookingInfoResponse

	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
	Lane       int `json:"lane"`
	SlotsSpan  int `json:"slotsSpan"`
}

// AvailableRangeResponse свободное окно
type AvailableRangeResponse struct {
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// BlockResponse блок из смежных слотов одного состояния
type BlockResponse struct {
	StartIndex int     `json:"startIndex"`
	EndIndex   int     `json:"endIndex"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	BookingIDs []int64 `json:"bookingIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeline.Response) *TimelineResponse {
	layout := resp.Layout

	out := &TimelineResponse{
		Date: resp.Date.Format(domain.DateFormat),
		Grid: GridResponse{
			StartHour:           resp.Params.StartHour,
			EndHour:             resp.Params.EndHour,
			SlotIntervalMinutes: resp.Params.SlotIntervalMinutes,
			SlotCount:           resp.Params.SlotCount(),
		},
		Slots:           make([]SlotResponse, 0, len(layout.Slots)),
		Bookings:        make([]LanedBookingResponse, 0, len(layout.Bookings)),
		LaneCount:       layout.LaneCount,
		AvailableRanges: make([]AvailableRangeResponse, 0, len(layout.AvailableRanges)),
		Blocks:          make([]BlockResponse, 0, len(layout.Blocks)),
		Heights:         make([]string, 0, len(layout.Heights)),
		Unplaced:        make([]BookingInfoResponse, 0, len(layout.Unplaced)),
	}

	for _, slot := range layout.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Index:      slot.Index,
			StartTime:  slot.StartTime.String(),
			EndTime:    slot.EndTime.String(),
			Status:     string(slot.Status),
			BookingIDs: bookingIDs(slot.Bookings),
		})
	}

	for _, laned := range layout.Bookings {
		out.Bookings = append(out.Bookings, LanedBookingResponse{
			BookingInfoResponse: bookingInfo(laned.Booking),
			StartIndex:          laned.StartIndex,
			EndIndex:            laned.EndIndex,
			Lane:                laned.Lane,
			SlotsSpan:           laned.SlotsSpan,
		})
	}

	for _, rng := range layout.AvailableRanges {
		out.AvailableRanges = append(out.AvailableRanges, AvailableRangeResponse{
			StartIndex: rng.StartIndex,
			EndIndex:   rng.EndIndex,
			StartTime:  rng.StartTime.String(),
			EndTime:    rng.EndTime.String(),
		})
	}

	for _, block := range layout.Blocks {
		out.Blocks = append(out.Blocks, BlockResponse{
			StartIndex: block.StartIndex,
			EndIndex:   block.EndIndex,
			StartTime:  block.StartTime.String(),
			EndTime:    block.EndTime.String(),
			Status:     string(block.Status),
			BookingIDs: bookingIDs(block.Bookings),
		})
	}

	for _, height := range layout.Heights {
		out.Heights = append(out.Heights, string(height))
	}

	for _, b := range layout.Unplaced {
		out.Unplaced = append(out.Unplaced, bookingInfo(b))
	}

	return out
}

func bookingInfo(b *domain.Booking) BookingInfoResponse {
	return BookingInfoResponse{
		ID:              b.ID,
		ServiceName:     b.ServiceName,
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.Duration(),
		Price:           b.Price,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
	}
}

func bookingIDs(bookings []*domain.Booking) []int64 {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}
