package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// lunes 2 de marzo de 2026
func lunes(hora, minuto int) time.Time {
	return time.Date(2026, 3, 2, hora, minuto, 0, 0, time.UTC)
}

func solicitudBase(ahora time.Time) SolicitudRegistro {
	return SolicitudRegistro{
		Ahora:     ahora,
		OrdenDia:  1,
		HrInicio:  "08:00",
		HrFin:     "10:00",
		GraciaMin: 15,
		IDAula:    4,
	}
}

func TestValidarRegistroDentroDeVentana(t *testing.T) {
	assert.NoError(t, ValidarRegistro(solicitudBase(lunes(8, 30))))
}

func TestValidarRegistroAceptaLaGracia(t *testing.T) {
	// 15 minutos antes del inicio y después del fin
	assert.NoError(t, ValidarRegistro(solicitudBase(lunes(7, 45))))
	assert.NoError(t, ValidarRegistro(solicitudBase(lunes(10, 15))))
}

func TestValidarRegistroFueraDeVentana(t *testing.T) {
	assert.ErrorIs(t, ValidarRegistro(solicitudBase(lunes(7, 30))), ErrFueraDeVentana)
	assert.ErrorIs(t, ValidarRegistro(solicitudBase(lunes(10, 30))), ErrFueraDeVentana)
}

func TestValidarRegistroDiaEquivocado(t *testing.T) {
	s := solicitudBase(lunes(8, 30))
	s.OrdenDia = 3 // la sesión es de miércoles
	assert.ErrorIs(t, ValidarRegistro(s), ErrDiaNoCorresponde)
}

// El QR de otra aula se rechaza y no se registra nada.
func TestValidarRegistroQRDeOtraAula(t *testing.T) {
	s := solicitudBase(lunes(8, 30))
	s.IDAulaEscaneada = 9
	assert.ErrorIs(t, ValidarRegistro(s), ErrAulaNoCoincide)
}

func TestValidarRegistroQRDelAulaCorrecta(t *testing.T) {
	s := solicitudBase(lunes(8, 30))
	s.IDAulaEscaneada = 4
	assert.NoError(t, ValidarRegistro(s))
}

func TestOrdenDeFecha(t *testing.T) {
	assert.Equal(t, 1, OrdenDeFecha(lunes(8, 0)))
	assert.Equal(t, 6, OrdenDeFecha(time.Date(2026, 3, 7, 8, 0, 0, 0, time.UTC))) // sábado
	assert.Equal(t, 7, OrdenDeFecha(time.Date(2026, 3, 8, 8, 0, 0, 0, time.UTC))) // domingo
}

func TestNuevoFolio(t *testing.T) {
	folio := NuevoFolio()
	assert.True(t, strings.HasPrefix(folio, "AS-"))
	assert.Len(t, folio, 11)
	assert.NotEqual(t, folio, NuevoFolio())
}
