package model

import (
	"time"

	aulaModel "sigeho_backend/internals/features/catalogo/aulas/model"
	calModel "sigeho_backend/internals/features/catalogo/calendario/model"
	asigModel "sigeho_backend/internals/features/horarios/asignaciones/model"
)

type EstadoHorario string

const (
	HorarioActivo    EstadoHorario = "ACTIVO"
	HorarioCancelado EstadoHorario = "CANCELADO"
)

// HorarioClase es la unidad atómica de programación: una colocación
// (día, bloque, aula) que cubre `horas` de una asignación docente.
// Nunca se borra físicamente; cancelar fija estado=CANCELADO y libera
// la celda del calendario.
type HorarioClase struct {
	IDHorarioClase uint `gorm:"primaryKey;autoIncrement;column:id_horario_clase" json:"id_horario_clase"`
	IDGestion      uint `gorm:"column:id_gestion;not null;index" json:"id_gestion"`
	IDAsignacion   uint `gorm:"column:id_asignacion;not null;index" json:"id_asignacion"`

	IDDia           uint `gorm:"column:id_dia;not null" json:"id_dia"`
	IDBloqueHorario uint `gorm:"column:id_bloque_horario;not null" json:"id_bloque_horario"`
	IDAula          uint `gorm:"column:id_aula;not null" json:"id_aula"`

	Horas int `gorm:"column:horas;not null;default:1" json:"horas"`

	Estado EstadoHorario `gorm:"column:estado;not null;default:'ACTIVO'" json:"estado"`

	FechaCreacion     time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaModificacion *time.Time `gorm:"column:fecha_modificacion;autoUpdateTime" json:"fecha_modificacion,omitempty"`

	Asignacion    *asigModel.AsignacionDocente `gorm:"foreignKey:IDAsignacion;references:IDAsignacion" json:"asignacion,omitempty"`
	Dia           *calModel.Dia                `gorm:"foreignKey:IDDia;references:IDDia" json:"dia,omitempty"`
	BloqueHorario *calModel.BloqueHorario      `gorm:"foreignKey:IDBloqueHorario;references:IDBloqueHorario" json:"bloque_horario,omitempty"`
	Aula          *aulaModel.Aula              `gorm:"foreignKey:IDAula;references:IDAula" json:"aula,omitempty"`
}

func (HorarioClase) TableName() string { return "horarios_clase" }

func (h *HorarioClase) Activo() bool { return h.Estado == HorarioActivo }
