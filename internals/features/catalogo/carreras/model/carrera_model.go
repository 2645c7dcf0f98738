package model

import "time"

type Carrera struct {
	IDCarrera uint   `gorm:"primaryKey;autoIncrement;column:id_carrera" json:"id_carrera"`
	Nombre    string `gorm:"column:nombre;not null" json:"nombre"`
	Codigo    string `gorm:"column:codigo;not null;uniqueIndex" json:"codigo"`
	Activo    bool   `gorm:"column:activo;not null;default:true" json:"activo"`

	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (Carrera) TableName() string { return "carreras" }
