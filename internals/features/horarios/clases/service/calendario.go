package service

import (
	"fmt"

	"gorm.io/gorm"

	aulaModel "sigeho_backend/internals/features/catalogo/aulas/model"
	calModel "sigeho_backend/internals/features/catalogo/calendario/model"
)

// CargarSnapshot materializa el calendario de recursos de una gestión
// dentro de la transacción dada: catálogos, cargas docentes con su
// cobertura actual y las sesiones ACTIVO indexadas por celda.
func CargarSnapshot(tx *gorm.DB, idGestion uint) (*Snapshot, error) {
	var filasDias []calModel.Dia
	if err := tx.Order("orden ASC").Find(&filasDias).Error; err != nil {
		return nil, fmt.Errorf("cargar días: %w", err)
	}
	dias := make([]DiaInfo, 0, len(filasDias))
	for _, d := range filasDias {
		dias = append(dias, DiaInfo{ID: d.IDDia, Nombre: d.Nombre, Orden: d.Orden})
	}

	var filasBloques []calModel.BloqueHorario
	if err := tx.Order("orden ASC").Find(&filasBloques).Error; err != nil {
		return nil, fmt.Errorf("cargar bloques: %w", err)
	}
	bloques := make([]BloqueInfo, 0, len(filasBloques))
	for _, b := range filasBloques {
		aplicables := make([]int, 0, len(b.DiasAplicables))
		for _, d := range b.DiasAplicables {
			aplicables = append(aplicables, int(d))
		}
		bloques = append(bloques, BloqueInfo{
			ID:             b.IDBloqueHorario,
			Nombre:         b.Nombre,
			Orden:          b.Orden,
			HrInicio:       b.HrInicio,
			HrFin:          b.HrFin,
			DiasAplicables: aplicables,
		})
	}

	var filasAulas []aulaModel.Aula
	if err := tx.Preload("TipoAula").Find(&filasAulas).Error; err != nil {
		return nil, fmt.Errorf("cargar aulas: %w", err)
	}
	aulas := make([]AulaInfo, 0, len(filasAulas))
	for _, a := range filasAulas {
		info := AulaInfo{
			ID:            a.IDAula,
			Nombre:        a.Nombre,
			Capacidad:     a.Capacidad,
			Piso:          a.Piso,
			Mantenimiento: a.Mantenimiento,
			Activo:        a.Activo,
		}
		if a.TipoAula != nil {
			info.TipoAula = a.TipoAula.Nombre
		}
		aulas = append(aulas, info)
	}

	var cargas []CargaItem
	err := tx.Raw(`
		SELECT a.id_asignacion  AS id_asignacion,
		       a.cod_docente    AS cod_docente,
		       a.hrs_asignadas  AS hrs_asignadas,
		       m.id_carrera     AS id_carrera,
		       m.nombre         AS materia,
		       g.nombre         AS grupo,
		       g.cupo           AS cupo,
		       tc.hrs_maximas   AS hrs_maximas,
		       COALESCE(h.horas_activas, 0) AS hrs_activas
		FROM asignaciones_docente a
		JOIN materias_grupo mg ON mg.id_materia_grupo = a.id_materia_grupo
		JOIN materias m        ON m.id_materia = mg.id_materia
		JOIN grupos g          ON g.id_grupo = mg.id_grupo
		JOIN docentes d        ON d.cod_docente = a.cod_docente
		JOIN tipos_contrato tc ON tc.id_tipo_contrato = d.id_tipo_contrato
		LEFT JOIN (
			SELECT id_asignacion, SUM(horas) AS horas_activas
			FROM horarios_clase
			WHERE id_gestion = ? AND estado = 'ACTIVO'
			GROUP BY id_asignacion
		) h ON h.id_asignacion = a.id_asignacion
		WHERE a.id_gestion = ?
		ORDER BY a.id_asignacion`, idGestion, idGestion).Scan(&cargas).Error
	if err != nil {
		return nil, fmt.Errorf("cargar asignaciones: %w", err)
	}

	var sesiones []Sesion
	err = tx.Raw(`
		SELECT hc.id_horario_clase  AS id,
		       hc.id_asignacion     AS id_asignacion,
		       a.cod_docente        AS cod_docente,
		       hc.id_dia            AS id_dia,
		       hc.id_bloque_horario AS id_bloque,
		       hc.id_aula           AS id_aula,
		       hc.horas             AS horas
		FROM horarios_clase hc
		JOIN asignaciones_docente a ON a.id_asignacion = hc.id_asignacion
		WHERE hc.id_gestion = ? AND hc.estado = 'ACTIVO'`, idGestion).Scan(&sesiones).Error
	if err != nil {
		return nil, fmt.Errorf("cargar sesiones: %w", err)
	}

	return NuevoSnapshot(idGestion, dias, bloques, aulas, cargas, sesiones), nil
}
