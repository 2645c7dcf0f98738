package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dos aulas libres en todos los slots: 690A (30) y 690B (10). El grupo de
// 25 sólo cabe en 690A; el motor nunca debe elegir 690B.
func TestGenerarPrefiereAulaConCapacidad(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{
			{ID: 1, Nombre: "Lunes", Orden: 1},
			{ID: 2, Nombre: "Martes", Orden: 2},
		},
		[]BloqueInfo{
			{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"},
			{ID: 2, Nombre: "B2", Orden: 2, HrInicio: "08:00", HrFin: "09:00"},
		},
		[]AulaInfo{
			{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true},
			{ID: 2, Nombre: "690B", Capacidad: 10, Activo: true},
		},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, IDCarrera: 1, Materia: "Cálculo I", Grupo: "A",
				Cupo: 25, HrsAsignadas: 4, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 0)

	require.Len(t, res.Exitosas, 1)
	assert.Empty(t, res.Fallidas)
	assert.Equal(t, "4/4 hrs", res.Exitosas[0].Completado)

	require.Len(t, res.Nuevas, 4)
	for _, ses := range res.Nuevas {
		assert.Equal(t, uint(1), ses.IDAula, "el grupo de 25 no cabe en 690B")
	}
}

// Dos cargas del mismo docente compiten por el único slot; la más pesada
// se coloca primero y la otra falla con INSTRUCTOR_CONFLICT.
func TestGenerarReportaChoqueDeDocente(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "09:00"}},
		[]AulaInfo{
			{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true},
			{ID: 2, Nombre: "690B", Capacidad: 30, Activo: true},
		},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 2, HrsMaximas: 20},
			{IDAsignacion: 2, CodDocente: 10, Materia: "Álgebra", Grupo: "B",
				Cupo: 20, HrsAsignadas: 1, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 0)

	require.Len(t, res.Exitosas, 1)
	assert.Equal(t, "Cálculo I", res.Exitosas[0].Materia)

	require.Len(t, res.Fallidas, 1)
	assert.Equal(t, "Álgebra", res.Fallidas[0].Materia)
	assert.Contains(t, res.Fallidas[0].Razon, "INSTRUCTOR_CONFLICT")
}

// Repetir la generación con las cargas ya cubiertas no produce sesiones
// nuevas: las cubiertas se saltan.
func TestGenerarEsIdempotente(t *testing.T) {
	dias := []DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}, {ID: 2, Nombre: "Martes", Orden: 2}}
	bloques := []BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"}}
	aulas := []AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}}
	cargas := []CargaItem{
		{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
			Cupo: 20, HrsAsignadas: 2, HrsMaximas: 20},
	}

	primero := GenerarAutomatico(NuevoSnapshot(7, dias, bloques, aulas, cargas, nil), 0)
	require.Len(t, primero.Nuevas, 2)

	// segunda corrida: el snapshot recargado refleja las horas ya activas
	cubiertas := []CargaItem{
		{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
			Cupo: 20, HrsAsignadas: 2, HrsActivas: 2, HrsMaximas: 20},
	}
	segundo := GenerarAutomatico(NuevoSnapshot(7, dias, bloques, aulas, cubiertas, primero.Nuevas), 0)

	assert.Empty(t, segundo.Nuevas)
	assert.Zero(t, segundo.Resumen.TotalAsignaciones)
}

func TestGenerarOrdenaPorHorasYDesempataPorDocente(t *testing.T) {
	// un solo slot; gana la carga con más horas requeridas
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 20, Materia: "Física", Grupo: "A",
				Cupo: 20, HrsAsignadas: 1, HrsMaximas: 20},
			{IDAsignacion: 2, CodDocente: 10, Materia: "Química", Grupo: "B",
				Cupo: 20, HrsAsignadas: 3, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 0)

	require.NotEmpty(t, res.Nuevas)
	assert.Equal(t, uint(2), res.Nuevas[0].IDAsignacion, "la carga de 3 hrs va primero")
}

func TestGenerarFiltraPorCarrera(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{
			{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"},
			{ID: 2, Nombre: "B2", Orden: 2, HrInicio: "08:00", HrFin: "09:00"},
		},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, IDCarrera: 1, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 1, HrsMaximas: 20},
			{IDAsignacion: 2, CodDocente: 11, IDCarrera: 2, Materia: "Anatomía", Grupo: "A",
				Cupo: 20, HrsAsignadas: 1, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 1)

	assert.Equal(t, 1, res.Resumen.TotalAsignaciones)
	require.Len(t, res.Nuevas, 1)
	assert.Equal(t, uint(1), res.Nuevas[0].IDAsignacion)
}

func TestGenerarCoberturaParcial(t *testing.T) {
	// sólo hay 1 hora de calendario para una carga de 3
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 3, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 0)

	require.Len(t, res.Exitosas, 1)
	assert.Equal(t, "1/3 hrs", res.Exitosas[0].Completado)
	assert.Equal(t, 1, res.Resumen.Exitosas)
}

func TestGenerarResumen(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "09:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 2, HrsMaximas: 20},
			{IDAsignacion: 2, CodDocente: 10, Materia: "Álgebra", Grupo: "B",
				Cupo: 20, HrsAsignadas: 2, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 0)

	assert.Equal(t, 2, res.Resumen.TotalAsignaciones)
	assert.Equal(t, 1, res.Resumen.Exitosas)
	assert.Equal(t, 1, res.Resumen.Fallidas)
	assert.InDelta(t, 50.0, res.Resumen.PorcentajeExito, 0.001)
}

func TestBloqueAplicaEnDia(t *testing.T) {
	todos := BloqueInfo{ID: 1, Orden: 1}
	assert.True(t, todos.AplicaEnDia(1))
	assert.True(t, todos.AplicaEnDia(6))

	soloViernes := BloqueInfo{ID: 2, Orden: 2, DiasAplicables: []int{5}}
	assert.True(t, soloViernes.AplicaEnDia(5))
	assert.False(t, soloViernes.AplicaEnDia(1))
}

func TestDuracionDelBloque(t *testing.T) {
	assert.Equal(t, 2, BloqueInfo{HrInicio: "07:00", HrFin: "09:00"}.Duracion())
	assert.Equal(t, 1, BloqueInfo{HrInicio: "07:00", HrFin: "07:45"}.Duracion())
	assert.Equal(t, 1, BloqueInfo{HrInicio: "mal", HrFin: "09:00"}.Duracion())
}

// Sin aulas activas ninguna regla llega a evaluarse; la razón debe
// decirlo en vez de culpar a una regla que nunca corrió.
func TestGenerarSinAulasReportaSinCandidatas(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: false}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 2, HrsMaximas: 20},
		},
		nil)

	res := GenerarAutomatico(s, 0)

	assert.Empty(t, res.Exitosas)
	require.Len(t, res.Fallidas, 1)
	assert.Contains(t, res.Fallidas[0].Razon, "NO_CANDIDATES")
	assert.NotContains(t, res.Fallidas[0].Razon, "ROOM_CONFLICT")
}
