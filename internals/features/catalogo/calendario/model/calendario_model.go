package model

import "github.com/lib/pq"

type Dia struct {
	IDDia  uint   `gorm:"primaryKey;autoIncrement;column:id_dia" json:"id_dia"`
	Nombre string `gorm:"column:nombre;not null;uniqueIndex" json:"nombre"`

	// Orden canónico de iteración (lunes=1 ... sábado=6)
	Orden int `gorm:"column:orden;not null;uniqueIndex" json:"orden"`
}

func (Dia) TableName() string { return "dias" }

type BloqueHorario struct {
	IDBloqueHorario uint   `gorm:"primaryKey;autoIncrement;column:id_bloque_horario" json:"id_bloque_horario"`
	Nombre          string `gorm:"column:nombre;not null" json:"nombre"`

	HrInicio string `gorm:"column:hr_inicio;type:time;not null" json:"hr_inicio"`
	HrFin    string `gorm:"column:hr_fin;type:time;not null" json:"hr_fin"`

	Orden int `gorm:"column:orden;not null;uniqueIndex" json:"orden"`

	// Días (orden del día) en que el bloque aplica; vacío = todos
	DiasAplicables pq.Int64Array `gorm:"column:dias_aplicables;type:int[]" json:"dias_aplicables,omitempty"`
}

func (BloqueHorario) TableName() string { return "bloques_horario" }

// AplicaEnDia indica si el bloque puede usarse en el día dado (por orden).
func (b *BloqueHorario) AplicaEnDia(orden int) bool {
	if len(b.DiasAplicables) == 0 {
		return true
	}
	for _, d := range b.DiasAplicables {
		if int(d) == orden {
			return true
		}
	}
	return false
}
