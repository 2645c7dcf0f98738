package service

import (
	"fmt"
	"sort"
)

// Formas de respuesta del endpoint de publicación.
type EstadisticasPublicacion struct {
	HorariosPublicados    int `json:"horarios_publicados"`
	DocentesAfectados     int `json:"docentes_afectados"`
	AsignacionesCompletas int `json:"asignaciones_completas"`
}

type ResultadoPublicacion struct {
	Estadisticas EstadisticasPublicacion

	// Cargas sin cubrir; bloquean la publicación (422)
	Pendientes []string

	// Conflictos detectados en la re-verificación de integridad; no
	// deberían ser alcanzables si los caminos de asignación aplicaron las
	// reglas, así que cualquier entrada es señal de bug, no error de uso.
	Errores []string
}

func (r ResultadoPublicacion) Lista() bool {
	return len(r.Pendientes) == 0 && len(r.Errores) == 0
}

// EvaluarPublicacion corre todas las precondiciones de publicación sobre
// el snapshot y las reporta juntas, nunca fail-fast: el cliente recibe la
// foto completa de lo que falta.
func EvaluarPublicacion(s *Snapshot) ResultadoPublicacion {
	res := ResultadoPublicacion{
		Pendientes: []string{},
		Errores:    []string{},
	}

	completas := 0
	for _, c := range s.Cargas {
		if c.Restante() > 0 {
			res.Pendientes = append(res.Pendientes, fmt.Sprintf(
				"%s - %s (%d/%d hrs)", c.Materia, c.Grupo, c.HrsActivas, c.HrsAsignadas))
		} else {
			completas++
		}
	}

	res.Errores = append(res.Errores, s.conflictosIntegridad()...)

	docentes := map[uint]struct{}{}
	for _, ses := range s.sesiones {
		docentes[ses.CodDocente] = struct{}{}
	}
	res.Estadisticas = EstadisticasPublicacion{
		HorariosPublicados:    len(s.sesiones),
		DocentesAfectados:     len(docentes),
		AsignacionesCompletas: completas,
	}
	return res
}

// conflictosIntegridad re-verifica los invariantes de unicidad sobre las
// sesiones ACTIVO: ningún par puede compartir (aula, día, bloque) ni
// (docente, día, bloque). Defensa en profundidad frente a escrituras que
// hubieran eludido el verificador.
func (s *Snapshot) conflictosIntegridad() []string {
	ids := make([]uint, 0, len(s.sesiones))
	for id := range s.sesiones {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	vistoAula := map[llaveSlot]uint{}
	vistoDocente := map[llaveSlot]uint{}
	errores := []string{}

	for _, id := range ids {
		ses := s.sesiones[id]
		ka := llaveSlot{ses.IDAula, ses.IDDia, ses.IDBloque}
		if otro, ok := vistoAula[ka]; ok {
			errores = append(errores, fmt.Sprintf(
				"%s: aula %d con dos sesiones activas (horarios %d y %d)",
				ReglaChoqueAula, ses.IDAula, otro, id))
		} else {
			vistoAula[ka] = id
		}
		kd := llaveSlot{ses.CodDocente, ses.IDDia, ses.IDBloque}
		if otro, ok := vistoDocente[kd]; ok {
			errores = append(errores, fmt.Sprintf(
				"%s: docente %d con dos sesiones activas (horarios %d y %d)",
				ReglaChoqueDocente, ses.CodDocente, otro, id))
		} else {
			vistoDocente[kd] = id
		}
	}
	return errores
}
