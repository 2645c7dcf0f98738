package dto

import "strings"

type MateriaRequest struct {
	IDCarrera uint   `json:"id_carrera" validate:"required"`
	Nombre    string `json:"nombre" validate:"required,min=3,max=100"`
	Sigla     string `json:"sigla" validate:"required,min=2,max=20"`
}

func (r *MateriaRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Sigla = strings.ToUpper(strings.TrimSpace(r.Sigla))
}

type MateriaGrupoRequest struct {
	IDMateria uint `json:"id_materia" validate:"required"`
	IDGrupo   uint `json:"id_grupo" validate:"required"`
}
