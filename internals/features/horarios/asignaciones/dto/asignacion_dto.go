package dto

type CreateAsignacionRequest struct {
	CodDocente     uint `json:"cod_docente" validate:"required"`
	IDMateriaGrupo uint `json:"id_materia_grupo" validate:"required"`
	HrsAsignadas   int  `json:"hrs_asignadas" validate:"required,gt=0,lte=40"`
}

type UpdateAsignacionRequest struct {
	HrsAsignadas int `json:"hrs_asignadas" validate:"required,gt=0,lte=40"`
}

type ListAsignacionesQuery struct {
	CodDocente uint `query:"cod_docente"`
	IDGestion  uint `query:"id_gestion"`
}

// AsignacionResponse aplana la asignación con la materia, grupo y docente.
type AsignacionResponse struct {
	IDAsignacion        uint   `json:"id_asignacion"`
	IDGestion           uint   `json:"id_gestion"`
	CodDocente          uint   `json:"cod_docente"`
	Docente             string `json:"docente"`
	IDMateriaGrupo      uint   `json:"id_materia_grupo"`
	Materia             string `json:"materia"`
	Sigla               string `json:"sigla"`
	Grupo               string `json:"grupo"`
	HrsAsignadas        int    `json:"hrs_asignadas"`
	HrsProgramadas      int    `json:"hrs_programadas"`
	RequiereRecobertura bool   `json:"requiere_recobertura"`
}
