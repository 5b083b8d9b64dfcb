package generate_sessions

import (
	"time"

	"github.com/avlnk/StudioBookingService/pkg/types"
)

// Request модель запроса на создание сессий.
// Либо одиночная дата, либо повторяющееся расписание с диапазоном дат
// и набором дней недели.
type Request struct {
	SessionTypeID int64            // ID типа сессии
	StartTime     types.TimeString // Время начала (например, "09:00")

	Date *time.Time // Одиночная дата (взаимоисключима с Recurring)

	Recurring *RecurringSchedule // Повторяющееся расписание
}

// RecurringSchedule повторяющееся расписание в диапазоне дат
type RecurringSchedule struct {
	StartDate    time.Time // Начало диапазона включительно
	EndDate      time.Time // Конец диапазона включительно
	DaysOfWeek   []string  // Дни недели английскими именами в нижнем регистре
	ExcludeDates []string  // Исключаемые даты в формате YYYY-MM-DD
}

// FailedSlot слот, который не удалось создать
type FailedSlot struct {
	Date   time.Time
	Reason string
}

// Response итог создания: созданные сессии и несозданные слоты
type Response struct {
	Successful []*CreatedSession
	Failed     []*FailedSlot
}

// CreatedSession созданная сессия
type CreatedSession struct {
	ID            int64
	SessionTypeID int64
	Date          time.Time
	StartTime     types.TimeString
	IsActive      bool
	CreatedAt     time.Time
}
