package service

import (
	"fmt"
	"math"
	"sort"
)

// Resultado del motor automático; las formas siguen el contrato del
// endpoint generar-automatico.
type ResumenGeneracion struct {
	TotalAsignaciones int     `json:"total_asignaciones"`
	Exitosas          int     `json:"exitosas"`
	Fallidas          int     `json:"fallidas"`
	PorcentajeExito   float64 `json:"porcentaje_exito"`
}

type DetalleExitosa struct {
	Materia      string `json:"materia"`
	Grupo        string `json:"grupo"`
	HrsAsignadas int    `json:"hrs_asignadas"`
	Completado   string `json:"completado"`
}

type DetalleFallida struct {
	Materia string `json:"materia"`
	Grupo   string `json:"grupo"`
	Razon   string `json:"razon"`
}

type ResultadoGeneracion struct {
	Resumen  ResumenGeneracion
	Exitosas []DetalleExitosa
	Fallidas []DetalleFallida

	// Sesiones planificadas (sin ID), listas para persistir dentro de la
	// misma transacción que cargó el snapshot.
	Nuevas []Sesion
}

// GenerarAutomatico cubre con sesiones todas las cargas pendientes de la
// gestión del snapshot (opcionalmente filtradas por carrera). Greedy con
// orden determinista, sin backtracking: las cargas más pesadas se colocan
// primero, cuando los slots escasean menos. Nunca aborta por una carga
// individual; cada una termina como exitosa o fallida con razón.
//
// El snapshot se muta al colocar, de modo que cada decisión ve el estado
// acumulado de las anteriores; correr dos veces es idempotente porque las
// cargas ya cubiertas se saltan.
func GenerarAutomatico(s *Snapshot, idCarrera uint) ResultadoGeneracion {
	worklist := make([]CargaItem, 0, len(s.Cargas))
	for _, c := range s.Cargas {
		if idCarrera != 0 && c.IDCarrera != idCarrera {
			continue
		}
		if c.Restante() == 0 {
			continue
		}
		worklist = append(worklist, c)
	}

	sort.SliceStable(worklist, func(i, j int) bool {
		if worklist[i].HrsAsignadas != worklist[j].HrsAsignadas {
			return worklist[i].HrsAsignadas > worklist[j].HrsAsignadas
		}
		return worklist[i].CodDocente < worklist[j].CodDocente
	})

	res := ResultadoGeneracion{
		Exitosas: []DetalleExitosa{},
		Fallidas: []DetalleFallida{},
		Nuevas:   []Sesion{},
	}

	// IDs sintéticos para indexar las sesiones planificadas en el snapshot;
	// al persistir se reemplazan por los reales.
	siguiente := s.maxSesionID() + 1

	for _, carga := range worklist {
		restante := carga.Restante()
		colocadas := 0
		frecuencia := map[Regla]int{}

		for restante > 0 {
			ses, reglas, ok := s.mejorCandidata(carga, restante)
			if !ok {
				for r, n := range reglas {
					frecuencia[r] += n
				}
				break
			}
			ses.ID = siguiente
			siguiente++
			s.AgregarSesion(ses)
			res.Nuevas = append(res.Nuevas, ses)
			colocadas += ses.Horas
			restante -= ses.Horas
		}

		switch {
		case colocadas > 0 && restante == 0:
			res.Exitosas = append(res.Exitosas, DetalleExitosa{
				Materia:      carga.Materia,
				Grupo:        carga.Grupo,
				HrsAsignadas: colocadas,
				Completado:   fmt.Sprintf("%d/%d hrs", carga.HrsAsignadas, carga.HrsAsignadas),
			})
		case colocadas > 0:
			res.Exitosas = append(res.Exitosas, DetalleExitosa{
				Materia:      carga.Materia,
				Grupo:        carga.Grupo,
				HrsAsignadas: colocadas,
				Completado:   fmt.Sprintf("%d/%d hrs", carga.HrsActivas+colocadas, carga.HrsAsignadas),
			})
		default:
			res.Fallidas = append(res.Fallidas, DetalleFallida{
				Materia: carga.Materia,
				Grupo:   carga.Grupo,
				Razon:   reglaDominante(frecuencia).Razon(),
			})
		}
	}

	res.Resumen = ResumenGeneracion{
		TotalAsignaciones: len(worklist),
		Exitosas:          len(res.Exitosas),
		Fallidas:          len(res.Fallidas),
	}
	if len(worklist) > 0 {
		pct := float64(len(res.Exitosas)) / float64(len(worklist)) * 100
		res.Resumen.PorcentajeExito = math.Round(pct*100) / 100
	}
	return res
}

// mejorCandidata recorre (día, bloque, aula) en orden canónico y devuelve
// la primera colocación sin violaciones. Si ninguna sirve, devuelve el
// conteo de reglas violadas en todo el espacio de búsqueda.
func (s *Snapshot) mejorCandidata(carga CargaItem, restante int) (Sesion, map[Regla]int, bool) {
	frecuencia := map[Regla]int{}

	dias := append([]DiaInfo(nil), s.Dias...)
	sort.SliceStable(dias, func(i, j int) bool { return dias[i].Orden < dias[j].Orden })

	bloques := append([]BloqueInfo(nil), s.Bloques...)
	sort.SliceStable(bloques, func(i, j int) bool { return bloques[i].Orden < bloques[j].Orden })

	// Aulas por excedente de capacidad ascendente sobre el cupo del grupo,
	// con el ID como desempate estable.
	aulas := make([]AulaInfo, 0, len(s.Aulas))
	for _, a := range s.Aulas {
		if a.Activo {
			aulas = append(aulas, a)
		}
	}
	sort.SliceStable(aulas, func(i, j int) bool {
		si := aulas[i].Capacidad - carga.Cupo
		sj := aulas[j].Capacidad - carga.Cupo
		if si != sj {
			return si < sj
		}
		return aulas[i].ID < aulas[j].ID
	})

	for _, dia := range dias {
		for _, bloque := range bloques {
			if !bloque.AplicaEnDia(dia.Orden) {
				continue
			}
			horas := bloque.Duracion()
			if horas > restante {
				horas = restante
			}
			for _, aula := range aulas {
				cand := Candidata{
					IDAsignacion: carga.IDAsignacion,
					CodDocente:   carga.CodDocente,
					IDDia:        dia.ID,
					IDBloque:     bloque.ID,
					IDAula:       aula.ID,
					Horas:        horas,
					Cupo:         carga.Cupo,
					HrsMaximas:   carga.HrsMaximas,
				}
				violadas := s.Evaluar(cand)
				if len(violadas) == 0 {
					return Sesion{
						IDAsignacion: carga.IDAsignacion,
						CodDocente:   carga.CodDocente,
						IDDia:        dia.ID,
						IDBloque:     bloque.ID,
						IDAula:       aula.ID,
						Horas:        horas,
					}, nil, true
				}
				for _, r := range violadas {
					frecuencia[r]++
				}
			}
		}
	}
	return Sesion{}, frecuencia, false
}

// reglaDominante elige la regla que bloqueó más candidatas; empates se
// resuelven por el orden fijo de evaluación.
func reglaDominante(frecuencia map[Regla]int) Regla {
	if len(frecuencia) == 0 {
		return ReglaSinCandidatas
	}
	mejor := ReglaChoqueAula
	mayor := -1
	for _, r := range ordenReglas {
		if n := frecuencia[r]; n > mayor {
			mejor = r
			mayor = n
		}
	}
	return mejor
}

func (s *Snapshot) maxSesionID() uint {
	var max uint
	for id := range s.sesiones {
		if id > max {
			max = id
		}
	}
	return max
}
