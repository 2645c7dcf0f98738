package dto

import "strings"

type DocenteRequest struct {
	IDUsuario      uint    `json:"id_usuario" validate:"required"`
	IDTipoContrato uint    `json:"id_tipo_contrato" validate:"required"`
	Nombres        string  `json:"nombres" validate:"required,min=2,max=100"`
	Apellidos      string  `json:"apellidos" validate:"required,min=2,max=100"`
	Titulo         string  `json:"titulo" validate:"required,min=2,max=100"`
	Especialidad   *string `json:"especialidad"`
}

func (r *DocenteRequest) Normalize() {
	r.Nombres = strings.TrimSpace(r.Nombres)
	r.Apellidos = strings.TrimSpace(r.Apellidos)
	r.Titulo = strings.TrimSpace(r.Titulo)
	if r.Especialidad != nil {
		e := strings.TrimSpace(*r.Especialidad)
		if e == "" {
			r.Especialidad = nil
		} else {
			r.Especialidad = &e
		}
	}
}

type TipoContratoRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2,max=50"`
	Descripcion *string `json:"descripcion"`
	HrsMinimas  int     `json:"hrs_minimas" validate:"gte=0"`
	HrsMaximas  int     `json:"hrs_maximas" validate:"required,gt=0,gtefield=HrsMinimas"`
}
