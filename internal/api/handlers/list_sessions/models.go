package list_sessions

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/internal/service/sessions/models"
)

// SessionTypeInfo данные типа внутри ответа с сессией
type SessionTypeInfo struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Capacity        int      `json:"capacity"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	Color           string   `json:"color"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID            int64           `json:"id"`
	SessionTypeID int64           `json:"sessionTypeId"`
	Date          string          `json:"date"`
	StartTime     string          `json:"startTime"`
	SessionType   SessionTypeInfo `json:"sessionType"`

	BookedSlots     int `json:"bookedSlots"`
	AvailableSlots  int `json:"availableSlots"`
	UtilizationRate int `json:"utilizationRate"`
}

// SessionListResponse HTTP response со списком сессий
type SessionListResponse struct {
	Sessions []*SessionResponse `json:"sessions"`
	Total    int                `json:"total"`
}

// ParseListRequest разбирает query-параметры фильтра списка
func ParseListRequest(query url.Values) (*models.ListSessionsRequest, error) {
	req := &models.ListSessionsRequest{}

	if raw := strings.TrimSpace(query.Get("from")); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %v", err)
		}
		req.FromDate = &from
	}

	if raw := strings.TrimSpace(query.Get("to")); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %v", err)
		}
		req.ToDate = &to
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SessionListResponse) *SessionListResponse {
	sessions := make([]*SessionResponse, 0, len(resp.Sessions))
	for _, s := range resp.Sessions {
		sessions = append(sessions, FromServiceSession(s))
	}

	return &SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}
}

// FromServiceSession конвертирует одну сессию сервиса в HTTP response
func FromServiceSession(s *models.SessionResponse) *SessionResponse {
	return &SessionResponse{
		ID:            s.ID,
		SessionTypeID: s.SessionTypeID,
		Date:          s.Date.Format(domain.DateFormat),
		StartTime:     s.StartTime.String(),
		SessionType: SessionTypeInfo{
			ID:              s.SessionType.ID,
			Name:            s.SessionType.Name,
			Description:     s.SessionType.Description,
			Capacity:        s.SessionType.Capacity,
			DurationMinutes: s.SessionType.DurationMinutes,
			Price:           s.SessionType.Price,
			Color:           s.SessionType.Color,
		},
		BookedSlots:     s.BookedSlots,
		AvailableSlots:  s.AvailableSlots,
		UtilizationRate: s.UtilizationRate,
	}
}
