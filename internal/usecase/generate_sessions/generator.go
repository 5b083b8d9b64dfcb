package generate_sessions

import (
	"strings"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// weekdayNames английские имена дней недели в нижнем регистре
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// expandDates раскрывает повторяющееся расписание в список дат
// по возрастанию. Дата попадает в список, если её день недели входит
// в выбранный набор и её форма YYYY-MM-DD не входит в исключения.
func expandDates(start, end time.Time, daysOfWeek []string, excludeDates []string) []time.Time {
	selected := make(map[time.Weekday]bool, len(daysOfWeek))
	for _, name := range daysOfWeek {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			selected[wd] = true
		}
	}
	if len(selected) == 0 {
		return nil
	}

	excluded := make(map[string]bool, len(excludeDates))
	for _, d := range excludeDates {
		excluded[strings.TrimSpace(d)] = true
	}

	start = truncateToDay(start)
	end = truncateToDay(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !selected[d.Weekday()] {
			continue
		}
		if excluded[d.Format(domain.DateFormat)] {
			continue
		}
		dates = append(dates, d)
	}

	return dates
}

// isKnownWeekday проверяет имя дня недели
func isKnownWeekday(name string) bool {
	_, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
