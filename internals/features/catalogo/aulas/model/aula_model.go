package model

import (
	"time"
)

type TipoAula struct {
	IDTipoAula uint   `gorm:"primaryKey;autoIncrement;column:id_tipo_aula" json:"id_tipo_aula"`
	Nombre     string `gorm:"column:nombre;not null;uniqueIndex" json:"nombre"`
	Activo     bool   `gorm:"column:activo;not null;default:true" json:"activo"`
}

func (TipoAula) TableName() string { return "tipos_aula" }

type Aula struct {
	IDAula     uint `gorm:"primaryKey;autoIncrement;column:id_aula" json:"id_aula"`
	IDTipoAula uint `gorm:"column:id_tipo_aula;not null" json:"id_tipo_aula"`

	Nombre    string `gorm:"column:nombre;not null" json:"nombre"`
	Capacidad int    `gorm:"column:capacidad;not null" json:"capacidad"`
	Piso      int    `gorm:"column:piso;not null;default:0" json:"piso"`

	// Un aula en mantenimiento sigue listada pero no es asignable
	Mantenimiento bool `gorm:"column:mantenimiento;not null;default:false" json:"mantenimiento"`
	Activo        bool `gorm:"column:activo;not null;default:true" json:"activo"`

	FechaCreacion     time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaModificacion *time.Time `gorm:"column:fecha_modificacion;autoUpdateTime" json:"fecha_modificacion,omitempty"`

	TipoAula *TipoAula `gorm:"foreignKey:IDTipoAula;references:IDTipoAula" json:"tipo_aula,omitempty"`
}

func (Aula) TableName() string { return "aulas" }
