package model

import "time"

type Grupo struct {
	IDGrupo uint   `gorm:"primaryKey;autoIncrement;column:id_grupo" json:"id_grupo"`
	Nombre  string `gorm:"column:nombre;not null" json:"nombre"`

	// Cupo esperado de estudiantes; se compara contra la capacidad del aula
	Cupo   int  `gorm:"column:cupo;not null" json:"cupo"`
	Activo bool `gorm:"column:activo;not null;default:true" json:"activo"`

	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (Grupo) TableName() string { return "grupos" }
