package dto

import "sigeho_backend/internals/features/horarios/clases/service"

type CreateHorarioRequest struct {
	IDAsignacion    uint `json:"id_asignacion" validate:"required"`
	IDDia           uint `json:"id_dia" validate:"required"`
	IDBloqueHorario uint `json:"id_bloque_horario" validate:"required"`
	IDAula          uint `json:"id_aula" validate:"required"`

	// Horas a cubrir en la celda; 0 usa la duración del bloque
	Horas int `json:"horas" validate:"gte=0,lte=8"`
}

type UpdateHorarioRequest struct {
	IDDia           uint `json:"id_dia" validate:"required"`
	IDBloqueHorario uint `json:"id_bloque_horario" validate:"required"`
	IDAula          uint `json:"id_aula" validate:"required"`
}

type ListHorariosQuery struct {
	IDGestion  uint `query:"id_gestion"`
	CodDocente uint `query:"cod_docente"`
	IDAula     uint `query:"id_aula"`
}

type GenerarRequest struct {
	IDGestion uint `json:"id_gestion" validate:"required"`
	IDCarrera uint `json:"id_carrera"`
}

// DetallesGeneracion agrupa el detalle por ítem del motor automático.
type DetallesGeneracion struct {
	Exitosas []service.DetalleExitosa `json:"exitosas"`
	Fallidas []service.DetalleFallida `json:"fallidas"`
}

// HorarioSemanalItem es una celda del horario semanal ya resuelta con
// nombres, lista para pintar la grilla.
type HorarioSemanalItem struct {
	IDHorarioClase uint   `json:"id_horario_clase"`
	IDDia          uint   `json:"id_dia"`
	Dia            string `json:"dia"`
	OrdenDia       int    `json:"orden_dia"`
	IDBloque       uint   `json:"id_bloque_horario"`
	Bloque         string `json:"bloque"`
	HrInicio       string `json:"hr_inicio"`
	HrFin          string `json:"hr_fin"`
	Aula           string `json:"aula"`
	Materia        string `json:"materia"`
	Sigla          string `json:"sigla"`
	Grupo          string `json:"grupo"`
	Docente        string `json:"docente"`
	Horas          int    `json:"horas"`
	Estado         string `json:"estado"`
}
