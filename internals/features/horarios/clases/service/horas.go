package service

import (
	"fmt"
	"strings"
	"time"
)

// ParseHora acepta HH:mm o HH:mm:ss (formato de bloques_horario).
func ParseHora(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("hora inválida %q (se espera HH:mm o HH:mm:ss)", s)
}
