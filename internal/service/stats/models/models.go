package models

// DashboardStatsResponse сводные показатели для панели администратора
type DashboardStatsResponse struct {
	TotalBookings   int     // Все неотмененные бронирования
	TodayBookings   int     // Неотмененные бронирования на сессии сегодняшнего дня
	WeeklyRevenue   float64 // Сумма цен типов по подтвержденным бронированиям текущей недели
	AverageCapacity int     // Средняя загрузка сегодняшних сессий в процентах
}
