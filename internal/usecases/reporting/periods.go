package reporting

import "time"

// weekdayLabels são os rótulos fixos de dia da semana das tabelas do
// relatório, começando na segunda-feira.
var weekdayLabels = []string{
	"1 - Segunda",
	"2 - Terça",
	"3 - Quarta",
	"4 - Quinta",
	"5 - Sexta",
	"6 - Sábado",
	"7 - Domingo",
}

// weekdayLabel mapeia o dia da semana de uma data para o rótulo. time.Weekday
// começa no domingo, então a rotação alinha a segunda-feira ao índice zero.
func weekdayLabel(t time.Time) string {
	return weekdayLabels[(int(t.Weekday())+6)%7]
}

// dayPeriod é uma faixa fixa de horas do dia, com limites inclusivos.
type dayPeriod struct {
	name      string
	startHour int
	endHour   int
}

var dayPeriods = []dayPeriod{
	{name: "madrugada", startHour: 0, endHour: 5},
	{name: "manha", startHour: 6, endHour: 11},
	{name: "tarde", startHour: 12, endHour: 17},
	{name: "noite", startHour: 18, endHour: 23},
}
