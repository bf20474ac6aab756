package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia
// significa data ausente e retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfISOWeek retorna a segunda-feira da semana ISO da data informada,
// normalizada para meia-noite
func StartOfISOWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo conta como o sétimo dia da semana ISO
	}

	return day.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth retorna o primeiro dia do mês da data informada,
// normalizado para meia-noite
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
