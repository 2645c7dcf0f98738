package service

import (
	"fmt"
	"strings"
)

// Regla identifica una restricción de asignación. Los identificadores son
// parte del contrato de respuesta (campo razon de las fallidas).
type Regla string

const (
	ReglaChoqueAula    Regla = "ROOM_CONFLICT"
	ReglaChoqueDocente Regla = "INSTRUCTOR_CONFLICT"
	ReglaCapacidad     Regla = "CAPACITY_EXCEEDED"
	ReglaMantenimiento Regla = "MAINTENANCE"
	ReglaCargaExcedida Regla = "WORKLOAD_EXCEEDED"

	// ReglaSinCandidatas no es una restricción evaluada: se reporta
	// cuando el espacio de candidatas está vacío (sin aulas activas o
	// sin días/bloques) y ninguna regla llegó a ejecutarse.
	ReglaSinCandidatas Regla = "NO_CANDIDATES"
)

// ordenReglas fija el orden de evaluación y de reporte.
var ordenReglas = []Regla{
	ReglaChoqueAula,
	ReglaChoqueDocente,
	ReglaCapacidad,
	ReglaMantenimiento,
	ReglaCargaExcedida,
}

func (r Regla) Descripcion() string {
	switch r {
	case ReglaChoqueAula:
		return "el aula ya está ocupada en ese día y bloque"
	case ReglaChoqueDocente:
		return "el docente ya tiene clase en ese día y bloque"
	case ReglaCapacidad:
		return "la capacidad del aula es menor al cupo del grupo"
	case ReglaMantenimiento:
		return "el aula está en mantenimiento"
	case ReglaCargaExcedida:
		return "se excede la carga horaria máxima del contrato"
	case ReglaSinCandidatas:
		return "no hay aulas, días ni bloques candidatos que evaluar"
	}
	return string(r)
}

// Razon arma el texto humano de una regla, p.ej. para detalles.fallidas.
func (r Regla) Razon() string {
	return fmt.Sprintf("%s: %s", string(r), r.Descripcion())
}

// ConflictoError transporta la lista completa de reglas violadas; el
// llamador decide si reintenta con otro slot. No es un error fatal.
type ConflictoError struct {
	Reglas []Regla
}

func (e *ConflictoError) Error() string {
	partes := make([]string, 0, len(e.Reglas))
	for _, r := range e.Reglas {
		partes = append(partes, string(r))
	}
	return "conflicto de asignación: " + strings.Join(partes, ", ")
}

// Candidata es una colocación tentativa a evaluar contra el snapshot.
type Candidata struct {
	IDAsignacion uint
	CodDocente   uint
	IDDia        uint
	IDBloque     uint
	IDAula       uint
	Horas        int

	// Datos de contexto resueltos por el llamador
	Cupo       int
	HrsMaximas int

	// Sesión a excluir de la ocupación (movimiento de una sesión propia)
	Excluir uint
}

// Evaluar es la función de decisión pura del verificador de restricciones:
// devuelve TODAS las reglas violadas, en orden fijo, sin efectos.
// La usan por igual la asignación manual, el motor automático y la
// revalidación de publicación, de modo que la semántica de conflictos no
// puede divergir entre caminos.
func (s *Snapshot) Evaluar(c Candidata) []Regla {
	violadas := make([]Regla, 0, 2)

	for _, regla := range ordenReglas {
		switch regla {
		case ReglaChoqueAula:
			if s.AulaOcupada(c.IDAula, c.IDDia, c.IDBloque, c.Excluir) {
				violadas = append(violadas, regla)
			}
		case ReglaChoqueDocente:
			if s.DocenteOcupado(c.CodDocente, c.IDDia, c.IDBloque, c.Excluir) {
				violadas = append(violadas, regla)
			}
		case ReglaCapacidad:
			if aula, ok := s.Aula(c.IDAula); ok && aula.Capacidad < c.Cupo {
				violadas = append(violadas, regla)
			}
		case ReglaMantenimiento:
			if aula, ok := s.Aula(c.IDAula); ok && aula.Mantenimiento {
				violadas = append(violadas, regla)
			}
		case ReglaCargaExcedida:
			horas := s.HorasDocente(c.CodDocente)
			if c.Excluir != 0 {
				if ses, ok := s.Sesion(c.Excluir); ok && ses.CodDocente == c.CodDocente {
					horas -= ses.Horas
				}
			}
			if c.HrsMaximas > 0 && horas+c.Horas > c.HrsMaximas {
				violadas = append(violadas, regla)
			}
		}
	}
	return violadas
}
