package utils

import "time"

// ParseMonth interpreta um mês no formato AAAA-MM.
func ParseMonth(monthStr string) (time.Time, error) {
	return time.Parse("2006-01", monthStr)
}

// MonthStart devolve o primeiro instante do mês da data informada.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd devolve o último instante do mês da data informada.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Second)
}

// MonthLabel formata a data como rótulo de mês MM/AA.
func MonthLabel(t time.Time) string {
	return t.Format("01/06")
}

// DateOnly formata a data como AAAA-MM-DD.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
