package model

import (
	"time"

	carreraModel "sigeho_backend/internals/features/catalogo/carreras/model"
	grupoModel "sigeho_backend/internals/features/catalogo/grupos/model"
)

type Materia struct {
	IDMateria uint   `gorm:"primaryKey;autoIncrement;column:id_materia" json:"id_materia"`
	IDCarrera uint   `gorm:"column:id_carrera;not null" json:"id_carrera"`
	Nombre    string `gorm:"column:nombre;not null" json:"nombre"`
	Sigla     string `gorm:"column:sigla;not null;uniqueIndex" json:"sigla"`
	Activo    bool   `gorm:"column:activo;not null;default:true" json:"activo"`

	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`

	Carrera *carreraModel.Carrera `gorm:"foreignKey:IDCarrera;references:IDCarrera" json:"carrera,omitempty"`
}

func (Materia) TableName() string { return "materias" }

// MateriaGrupo es la oferta concreta de una materia para un grupo;
// las asignaciones docentes apuntan aquí.
type MateriaGrupo struct {
	IDMateriaGrupo uint `gorm:"primaryKey;autoIncrement;column:id_materia_grupo" json:"id_materia_grupo"`
	IDMateria      uint `gorm:"column:id_materia;not null;uniqueIndex:uq_materia_grupo" json:"id_materia"`
	IDGrupo        uint `gorm:"column:id_grupo;not null;uniqueIndex:uq_materia_grupo" json:"id_grupo"`
	Activo         bool `gorm:"column:activo;not null;default:true" json:"activo"`

	Materia *Materia          `gorm:"foreignKey:IDMateria;references:IDMateria" json:"materia,omitempty"`
	Grupo   *grupoModel.Grupo `gorm:"foreignKey:IDGrupo;references:IDGrupo" json:"grupo,omitempty"`
}

func (MateriaGrupo) TableName() string { return "materias_grupo" }
