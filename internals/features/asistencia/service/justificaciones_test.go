package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sigeho_backend/internals/features/asistencia/model"
)

func TestPermiteJustificarSinHistorial(t *testing.T) {
	assert.True(t, PermiteNuevaJustificacion(nil))
}

func TestPermiteReintentarTrasRechazo(t *testing.T) {
	estados := []model.EstadoJustificacion{model.JustificacionRechazada}

	assert.True(t, PermiteNuevaJustificacion(estados))
}

func TestNoPermiteConPendienteEnCurso(t *testing.T) {
	estados := []model.EstadoJustificacion{
		model.JustificacionRechazada,
		model.JustificacionPendiente,
	}

	assert.False(t, PermiteNuevaJustificacion(estados))
}

func TestNoPermiteConAprobada(t *testing.T) {
	estados := []model.EstadoJustificacion{model.JustificacionAprobada}

	assert.False(t, PermiteNuevaJustificacion(estados))
}
