package dto

import "strings"

type GrupoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=20"`
	Cupo   int    `json:"cupo" validate:"required,gt=0"`
}

func (r *GrupoRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
}
