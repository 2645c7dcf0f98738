package model

import "time"

type TipoContrato struct {
	IDTipoContrato uint    `gorm:"primaryKey;autoIncrement;column:id_tipo_contrato" json:"id_tipo_contrato"`
	Nombre         string  `gorm:"column:nombre;not null;uniqueIndex" json:"nombre"`
	Descripcion    *string `gorm:"column:descripcion" json:"descripcion,omitempty"`

	// Cota de carga horaria semanal por gestión
	HrsMinimas int `gorm:"column:hrs_minimas;not null;default:0" json:"hrs_minimas"`
	HrsMaximas int `gorm:"column:hrs_maximas;not null" json:"hrs_maximas"`
}

func (TipoContrato) TableName() string { return "tipos_contrato" }

type Docente struct {
	CodDocente     uint `gorm:"primaryKey;autoIncrement;column:cod_docente" json:"cod_docente"`
	IDUsuario      uint `gorm:"column:id_usuario;not null;uniqueIndex" json:"id_usuario"`
	IDTipoContrato uint `gorm:"column:id_tipo_contrato;not null" json:"id_tipo_contrato"`

	Nombres      string  `gorm:"column:nombres;not null" json:"nombres"`
	Apellidos    string  `gorm:"column:apellidos;not null" json:"apellidos"`
	Titulo       string  `gorm:"column:titulo;not null" json:"titulo"`
	Especialidad *string `gorm:"column:especialidad" json:"especialidad,omitempty"`

	Activo       bool       `gorm:"column:activo;not null;default:true" json:"activo"`
	FechaIngreso *time.Time `gorm:"column:fecha_ingreso" json:"fecha_ingreso,omitempty"`

	TipoContrato *TipoContrato `gorm:"foreignKey:IDTipoContrato;references:IDTipoContrato" json:"tipo_contrato,omitempty"`
}

func (Docente) TableName() string { return "docentes" }
