package create_sessions

import (
	"fmt"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	generateSessions "github.com/avlnk/StudioBookingService/internal/usecase/generate_sessions"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// CreateSessionsRequest HTTP request model.
// Либо одиночная дата, либо повторяющееся расписание.
type CreateSessionsRequest struct {
	SessionTypeID int64  `json:"sessionTypeId"`
	StartTime     string `json:"startTime"` // "09:00"

	Date *string `json:"date,omitempty"` // "2025-10-15"

	Recurring *RecurringScheduleRequest `json:"recurring,omitempty"`
}

// RecurringScheduleRequest повторяющееся расписание
type RecurringScheduleRequest struct {
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	DaysOfWeek   []string `json:"daysOfWeek"`
	ExcludeDates []string `json:"excludeDates,omitempty"`
}

// CreatedSessionResponse созданная сессия
type CreatedSessionResponse struct {
	ID            int64  `json:"id"`
	SessionTypeID int64  `json:"sessionTypeId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}

// FailedSlotResponse несозданный слот
type FailedSlotResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// CreateSessionsResponse итог создания
type CreateSessionsResponse struct {
	Successful []*CreatedSessionResponse `json:"successful"`
	Failed     []*FailedSlotResponse     `json:"failed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionsRequest) ToUseCaseRequest() (*generateSessions.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %v", err)
	}

	req := &generateSessions.Request{
		SessionTypeID: r.SessionTypeID,
		StartTime:     startTime,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %v", err)
		}
		req.Date = &date
	}

	if r.Recurring != nil {
		startDate, err := time.Parse(domain.DateFormat, r.Recurring.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		endDate, err := time.Parse(domain.DateFormat, r.Recurring.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}

		req.Recurring = &generateSessions.RecurringSchedule{
			StartDate:    startDate,
			EndDate:      endDate,
			DaysOfWeek:   r.Recurring.DaysOfWeek,
			ExcludeDates: r.Recurring.ExcludeDates,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSessions.Response) *CreateSessionsResponse {
	successful := make([]*CreatedSessionResponse, 0, len(resp.Successful))
	for _, s := range resp.Successful {
		successful = append(successful, &CreatedSessionResponse{
			ID:            s.ID,
			SessionTypeID: s.SessionTypeID,
			Date:          s.Date.Format(domain.DateFormat),
			StartTime:     s.StartTime.String(),
		})
	}

	failed := make([]*FailedSlotResponse, 0, len(resp.Failed))
	for _, f := range resp.Failed {
		failed = append(failed, &FailedSlotResponse{
			Date:   f.Date.Format(domain.DateFormat),
			Reason: f.Reason,
		})
	}

	return &CreateSessionsResponse{
		Successful: successful,
		Failed:     failed,
	}
}
