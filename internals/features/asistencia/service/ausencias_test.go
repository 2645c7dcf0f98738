package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiteBarridoDuranteElDia(t *testing.T) {
	ahora := time.Date(2026, 3, 2, 10, 30, 0, 0, time.Local)

	limite, ok := LimiteBarrido(ahora, 15)

	assert.True(t, ok)
	assert.Equal(t, "10:15:00", limite)
}

func TestLimiteBarridoNoEnvuelveAlPasarMedianoche(t *testing.T) {
	// A las 00:05 el corte con 15 min de gracia caería en el día anterior
	// (23:50): comparar esa hora contra los bloques de hoy marcaría como
	// vencidos bloques que aún no ocurren, así que el barrido se omite.
	ahora := time.Date(2026, 3, 2, 0, 5, 0, 0, time.Local)

	_, ok := LimiteBarrido(ahora, 15)

	assert.False(t, ok)
}

func TestLimiteBarridoEnElBordeDeMedianoche(t *testing.T) {
	ahora := time.Date(2026, 3, 2, 0, 15, 0, 0, time.Local)

	limite, ok := LimiteBarrido(ahora, 15)

	assert.True(t, ok)
	assert.Equal(t, "00:00:00", limite)
}
