package handlers

import (
	"strconv"
	"strings"
	"time"
)

// parseID aceita apenas inteiros positivos
func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// parseISOTime aceita data-hora ou data ISO-8601. Valores sem offset
// são interpretados no fuso do laboratório.
func parseISOTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}

// blankToNil normaliza opcionais únicos (email, cro): string vazia vira
// NULL para não colidir no índice de unicidade.
func blankToNil(s *string) *string {
	if s != nil && strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
