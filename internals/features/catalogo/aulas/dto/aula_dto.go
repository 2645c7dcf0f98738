package dto

import "strings"

type CreateAulaRequest struct {
	IDTipoAula    uint   `json:"id_tipo_aula" validate:"required"`
	Nombre        string `json:"nombre" validate:"required,min=2,max=50"`
	Capacidad     int    `json:"capacidad" validate:"required,gt=0"`
	Piso          int    `json:"piso" validate:"gte=0"`
	Mantenimiento bool   `json:"mantenimiento"`
	Activo        *bool  `json:"activo"`
}

func (r *CreateAulaRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
}

type UpdateAulaRequest struct {
	IDTipoAula    uint   `json:"id_tipo_aula" validate:"required"`
	Nombre        string `json:"nombre" validate:"required,min=2,max=50"`
	Capacidad     int    `json:"capacidad" validate:"required,gt=0"`
	Piso          int    `json:"piso" validate:"gte=0"`
	Mantenimiento bool   `json:"mantenimiento"`
}

func (r *UpdateAulaRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
}

type ListAulasQuery struct {
	IncluirInactivas bool `query:"incluir_inactivas"`
	Disponibles      bool `query:"disponibles"`
	EnMantenimiento  bool `query:"en_mantenimiento"`
}

type CreateTipoAulaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50"`
}

// DisponibilidadItem es una fila del reporte de disponibilidad por slot.
type DisponibilidadItem struct {
	IDAula    uint   `json:"id_aula"`
	Nombre    string `json:"nombre"`
	Capacidad int    `json:"capacidad"`
	Piso      int    `json:"piso"`
	TipoAula  string `json:"tipo_aula"`
	Estado    string `json:"estado"` // DISPONIBLE | OCUPADA | NO_DISPONIBLE
}

type DisponibilidadResumen struct {
	Total         int `json:"total"`
	Disponibles   int `json:"disponibles"`
	Ocupadas      int `json:"ocupadas"`
	NoDisponibles int `json:"no_disponibles"`
}
