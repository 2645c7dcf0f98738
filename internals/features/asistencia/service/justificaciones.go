package service

import (
	"sigeho_backend/internals/features/asistencia/model"
)

// PermiteNuevaJustificacion decide si una ausencia admite otra
// justificación dados los estados de las ya presentadas. A lo sumo una
// puede estar en curso (PENDIENTE o APROBADA); una RECHAZADA no bloquea
// un nuevo intento.
func PermiteNuevaJustificacion(estados []model.EstadoJustificacion) bool {
	for _, e := range estados {
		if e != model.JustificacionRechazada {
			return false
		}
	}
	return true
}
