package domain

import "time"

// DateRangeType é o seletor simbólico de janela de análise do dashboard
type DateRangeType string

const (
	DateRangeToday      DateRangeType = "today"
	DateRangeYesterday  DateRangeType = "yesterday"
	DateRangeLast3Days  DateRangeType = "last3days"
	DateRangeLast7Days  DateRangeType = "last7days"
	DateRangeLast30Days DateRangeType = "last30days"
	DateRangeThisMonth  DateRangeType = "thisMonth"
	DateRangeAllTime    DateRangeType = "allTime"
	DateRangeCustom     DateRangeType = "custom"
)

// Valid indica se o seletor é um dos valores conhecidos
func (d DateRangeType) Valid() bool {
	switch d {
	case DateRangeToday, DateRangeYesterday, DateRangeLast3Days, DateRangeLast7Days,
		DateRangeLast30Days, DateRangeThisMonth, DateRangeAllTime, DateRangeCustom:
		return true
	}
	return false
}

// CustomBounds são os limites explícitos exigidos pelo seletor "custom"
type CustomBounds struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Period é um intervalo de dias de calendário com limites inclusivos.
// Sempre derivado, nunca persistido.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Day normaliza um instante para a meia-noite UTC do seu próprio dia de
// calendário. Uma data "2024-03-05" representa o mesmo dia em qualquer
// fuso onde o processo rode.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains verifica se a data cai dentro do período, comparando apenas o
// dia de calendário.
func (p Period) Contains(t time.Time) bool {
	day := Day(t)
	return !day.Before(Day(p.StartDate)) && !day.After(Day(p.EndDate))
}

// Days retorna a quantidade de dias de calendário do período (limites
// inclusivos). Um período degenerado (início após o fim) tem zero dias.
func (p Period) Days() int {
	start := Day(p.StartDate)
	end := Day(p.EndDate)

	if end.Before(start) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}
