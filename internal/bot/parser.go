package bot

import (
	"strconv"
	"strings"
	"time"
)

// ParseTime разбирает время вида "9.30" / "09:30" / "9:30".
// Точка и двоеточие равнозначны, пробелы игнорируются.
// Возвращает только часы и минуты; с датой время склеивает вызывающий.
func ParseTime(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ParseDate разбирает дату вида "17.02.2026" / "17/02/2026",
// а также ключевые слова today/сегодня и tomorrow/завтра
// относительно переданного момента now.
// Возвращает полночь выбранного дня в локации now.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, false
	}

	switch s {
	case "today", "сегодня":
		return midnight(now), true
	case "tomorrow", "завтра":
		return midnight(now.AddDate(0, 0, 1)), true
	}

	s = strings.ReplaceAll(s, "/", ".")
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	d, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	if m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}

	// time.Date нормализует несуществующие даты (31.02 → 02-03),
	// поэтому валидность проверяем сравнением с тем, что просили.
	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, now.Location())
	if date.Year() != y || date.Month() != time.Month(m) || date.Day() != d {
		return time.Time{}, false
	}
	return date, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
