package dto

type Coordenadas struct {
	Latitud  float64 `json:"latitud" validate:"required,gte=-90,lte=90"`
	Longitud float64 `json:"longitud" validate:"required,gte=-180,lte=180"`
}

type RegistrarRequest struct {
	IDHorarioClase uint        `json:"id_horario_clase" validate:"required"`
	Coordenadas    Coordenadas `json:"coordenadas" validate:"required"`
}

type RegistrarQRRequest struct {
	IDHorarioClase  uint        `json:"id_horario_clase" validate:"required"`
	IDAulaEscaneada uint        `json:"id_aula_escaneada" validate:"required"`
	Coordenadas     Coordenadas `json:"coordenadas" validate:"required"`
}

type RevisarJustificacionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APROBADA RECHAZADA"`
}

// AusenciaItem es una fila del listado de ausencias del docente, con el
// estado de su justificación si existe.
type AusenciaItem struct {
	IDAsistencia  uint    `json:"id_asistencia"`
	Fecha         string  `json:"fecha"`
	Materia       string  `json:"materia"`
	Grupo         string  `json:"grupo"`
	Bloque        string  `json:"bloque"`
	Aula          string  `json:"aula"`
	Justificacion *string `json:"justificacion,omitempty"` // PENDIENTE | APROBADA | RECHAZADA
}
