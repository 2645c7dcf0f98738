package database

import (
	"log"

	asistenciaModel "sigeho_backend/internals/features/asistencia/model"
	aulaModel "sigeho_backend/internals/features/catalogo/aulas/model"
	calModel "sigeho_backend/internals/features/catalogo/calendario/model"
	carreraModel "sigeho_backend/internals/features/catalogo/carreras/model"
	docenteModel "sigeho_backend/internals/features/catalogo/docentes/model"
	gestionModel "sigeho_backend/internals/features/catalogo/gestiones/model"
	grupoModel "sigeho_backend/internals/features/catalogo/grupos/model"
	materiaModel "sigeho_backend/internals/features/catalogo/materias/model"
	asigModel "sigeho_backend/internals/features/horarios/asignaciones/model"
	claseModel "sigeho_backend/internals/features/horarios/clases/model"
)

// Migrate sincroniza el esquema. Orden por dependencias de FK.
func Migrate() {
	err := DB.AutoMigrate(
		&aulaModel.TipoAula{},
		&aulaModel.Aula{},
		&carreraModel.Carrera{},
		&grupoModel.Grupo{},
		&materiaModel.Materia{},
		&materiaModel.MateriaGrupo{},
		&docenteModel.TipoContrato{},
		&docenteModel.Docente{},
		&gestionModel.Gestion{},
		&calModel.Dia{},
		&calModel.BloqueHorario{},
		&asigModel.AsignacionDocente{},
		&claseModel.HorarioClase{},
		&asistenciaModel.Asistencia{},
		&asistenciaModel.Justificacion{},
	)
	if err != nil {
		log.Fatalf("migración fallida: %v", err)
	}
}
