package model

import (
	"fmt"
	"time"
)

type EstadoPublicacion string

const (
	PublicacionBorrador  EstadoPublicacion = "BORRADOR"
	PublicacionPublicada EstadoPublicacion = "PUBLICADA"
)

// Gestion es el período académico (semestre). A lo sumo una gestión
// está activa en todo el sistema; activar una desactiva las demás.
type Gestion struct {
	IDGestion uint `gorm:"primaryKey;autoIncrement;column:id_gestion" json:"id_gestion"`
	Anio      int  `gorm:"column:anio;not null;uniqueIndex:uq_gestion_periodo" json:"anio"`
	Semestre  int  `gorm:"column:semestre;not null;uniqueIndex:uq_gestion_periodo" json:"semestre"`

	FechaInicio time.Time `gorm:"column:fecha_inicio;type:date;not null" json:"fecha_inicio"`
	FechaFin    time.Time `gorm:"column:fecha_fin;type:date;not null" json:"fecha_fin"`

	Activo bool `gorm:"column:activo;not null;default:false" json:"activo"`

	// BORRADOR → PUBLICADA; la publicación es terminal
	EstadoPublicacion EstadoPublicacion `gorm:"column:estado_publicacion;not null;default:'BORRADOR'" json:"estado_publicacion"`
	FechaPublicacion  *time.Time        `gorm:"column:fecha_publicacion" json:"fecha_publicacion,omitempty"`

	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (Gestion) TableName() string { return "gestiones" }

func (g *Gestion) Publicada() bool {
	return g.EstadoPublicacion == PublicacionPublicada
}

// Etiqueta es el identificador legible del período, "anio/semestre".
func (g *Gestion) Etiqueta() string {
	return fmt.Sprintf("%d/%d", g.Anio, g.Semestre)
}
