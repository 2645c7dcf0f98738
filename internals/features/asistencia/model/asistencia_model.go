package model

import (
	"time"

	claseModel "sigeho_backend/internals/features/horarios/clases/model"
)

type EstadoAsistencia string

const (
	AsistenciaPresente EstadoAsistencia = "PRESENTE"
	AsistenciaAusente  EstadoAsistencia = "AUSENTE"
)

type MetodoRegistro string

const (
	MetodoBoton MetodoRegistro = "BOTON"
	MetodoQR    MetodoRegistro = "QR"
)

// Asistencia es el registro de una ocurrencia concreta (fecha calendario)
// de un horario de clase publicado. Los PRESENTE los crea el docente al
// marcar; los AUSENTE los infiere el barrido cuando el bloque venció sin
// registro. Una fila por (horario, fecha).
type Asistencia struct {
	IDAsistencia   uint `gorm:"primaryKey;autoIncrement;column:id_asistencia" json:"id_asistencia"`
	IDHorarioClase uint `gorm:"column:id_horario_clase;not null;uniqueIndex:uq_asistencia_dia" json:"id_horario_clase"`
	CodDocente     uint `gorm:"column:cod_docente;not null;index" json:"cod_docente"`

	Fecha        time.Time  `gorm:"column:fecha;type:date;not null;uniqueIndex:uq_asistencia_dia" json:"fecha"`
	HoraRegistro *time.Time `gorm:"column:hora_registro" json:"hora_registro,omitempty"`

	Latitud  *float64 `gorm:"column:latitud" json:"latitud,omitempty"`
	Longitud *float64 `gorm:"column:longitud" json:"longitud,omitempty"`

	Metodo *MetodoRegistro  `gorm:"column:metodo" json:"metodo,omitempty"`
	Estado EstadoAsistencia `gorm:"column:estado;not null" json:"estado"`

	// Comprobante legible entregado al docente al marcar
	Folio string `gorm:"column:folio;not null;default:''" json:"folio"`

	HorarioClase *claseModel.HorarioClase `gorm:"foreignKey:IDHorarioClase;references:IDHorarioClase" json:"horario_clase,omitempty"`
}

func (Asistencia) TableName() string { return "asistencias" }

type EstadoJustificacion string

const (
	JustificacionPendiente EstadoJustificacion = "PENDIENTE"
	JustificacionAprobada  EstadoJustificacion = "APROBADA"
	JustificacionRechazada EstadoJustificacion = "RECHAZADA"
)

// Justificacion: el docente explica un AUSENTE; un administrador la
// resuelve. Resuelta es inmutable; a lo sumo una abierta por asistencia.
type Justificacion struct {
	IDJustificacion uint `gorm:"primaryKey;autoIncrement;column:id_justificacion" json:"id_justificacion"`
	IDAsistencia    uint `gorm:"column:id_asistencia;not null;index" json:"id_asistencia"`

	Motivo    string  `gorm:"column:motivo;not null" json:"motivo"`
	Documento *string `gorm:"column:documento" json:"documento,omitempty"`

	Estado EstadoJustificacion `gorm:"column:estado;not null;default:'PENDIENTE'" json:"estado"`

	FechaSolicitud  time.Time  `gorm:"column:fecha_solicitud;autoCreateTime" json:"fecha_solicitud"`
	FechaResolucion *time.Time `gorm:"column:fecha_resolucion" json:"fecha_resolucion,omitempty"`
	ResueltoPor     *uint      `gorm:"column:resuelto_por" json:"resuelto_por,omitempty"`

	Asistencia *Asistencia `gorm:"foreignKey:IDAsistencia;references:IDAsistencia" json:"asistencia,omitempty"`
}

func (Justificacion) TableName() string { return "justificaciones" }
