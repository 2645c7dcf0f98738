package model

import (
	"time"

	docenteModel "sigeho_backend/internals/features/catalogo/docentes/model"
	materiaModel "sigeho_backend/internals/features/catalogo/materias/model"
)

// AsignacionDocente es la obligación de dictar una materia-grupo por un
// docente durante una gestión (hrs_asignadas horas semanales).
type AsignacionDocente struct {
	IDAsignacion   uint `gorm:"primaryKey;autoIncrement;column:id_asignacion" json:"id_asignacion"`
	IDGestion      uint `gorm:"column:id_gestion;not null;uniqueIndex:uq_asignacion" json:"id_gestion"`
	CodDocente     uint `gorm:"column:cod_docente;not null;uniqueIndex:uq_asignacion" json:"cod_docente"`
	IDMateriaGrupo uint `gorm:"column:id_materia_grupo;not null;uniqueIndex:uq_asignacion" json:"id_materia_grupo"`

	HrsAsignadas int `gorm:"column:hrs_asignadas;not null" json:"hrs_asignadas"`

	// Se enciende cuando se cancela una sesión de una gestión ya publicada;
	// la recobertura es seguimiento manual, nunca automática.
	RequiereRecobertura bool `gorm:"column:requiere_recobertura;not null;default:false" json:"requiere_recobertura"`

	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`

	Docente      *docenteModel.Docente      `gorm:"foreignKey:CodDocente;references:CodDocente" json:"docente,omitempty"`
	MateriaGrupo *materiaModel.MateriaGrupo `gorm:"foreignKey:IDMateriaGrupo;references:IDMateriaGrupo" json:"materia_grupo,omitempty"`
}

func (AsignacionDocente) TableName() string { return "asignaciones_docente" }
