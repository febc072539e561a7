package utils

import "time"

// DateKeyLayout é o formato das chaves de investimento diário (YYYY-MM-DD)
const DateKeyLayout = time.DateOnly

// DateKey formata o dia civil de t no fuso informado
func DateKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateKeyLayout)
}

// ParseDateKey interpreta uma chave YYYY-MM-DD como meia-noite no fuso informado
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateKeyLayout, key, loc)
}
