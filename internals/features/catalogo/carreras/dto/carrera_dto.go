package dto

import "strings"

type CarreraRequest struct {
	Nombre string `json:"nombre" validate:"required,min=3,max=100"`
	Codigo string `json:"codigo" validate:"required,min=2,max=20"`
}

func (r *CarreraRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Codigo = strings.ToUpper(strings.TrimSpace(r.Codigo))
}
