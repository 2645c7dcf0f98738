package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicacionListaConTodoCubierto(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "09:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 2, HrsActivas: 2, HrsMaximas: 20},
		},
		[]Sesion{
			{ID: 1, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 2},
		})

	res := EvaluarPublicacion(s)

	assert.True(t, res.Lista())
	assert.Empty(t, res.Pendientes)
	assert.Empty(t, res.Errores)
	assert.Equal(t, 1, res.Estadisticas.HorariosPublicados)
	assert.Equal(t, 1, res.Estadisticas.DocentesAfectados)
	assert.Equal(t, 1, res.Estadisticas.AsignacionesCompletas)
}

// Una carga con 2 de 4 horas cubiertas aparece en pendientes y bloquea la
// publicación.
func TestPublicacionReportaPendientes(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "09:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 4, HrsActivas: 2, HrsMaximas: 20},
			{IDAsignacion: 2, CodDocente: 11, Materia: "Álgebra", Grupo: "B",
				Cupo: 20, HrsAsignadas: 2, HrsActivas: 2, HrsMaximas: 20},
		},
		[]Sesion{
			{ID: 1, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 2},
		})

	res := EvaluarPublicacion(s)

	assert.False(t, res.Lista())
	require.Len(t, res.Pendientes, 1)
	assert.Equal(t, "Cálculo I - A (2/4 hrs)", res.Pendientes[0])
	assert.Equal(t, 1, res.Estadisticas.AsignacionesCompletas)
}

// La re-verificación de integridad detecta pares de sesiones activas que
// comparten celda; esto señala un bug aguas arriba, no un error de uso.
func TestPublicacionDetectaConflictosDeIntegridad(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "09:00"}},
		[]AulaInfo{{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true}},
		[]CargaItem{
			{IDAsignacion: 1, CodDocente: 10, Materia: "Cálculo I", Grupo: "A",
				Cupo: 20, HrsAsignadas: 2, HrsActivas: 2, HrsMaximas: 20},
			{IDAsignacion: 2, CodDocente: 11, Materia: "Álgebra", Grupo: "B",
				Cupo: 20, HrsAsignadas: 2, HrsActivas: 2, HrsMaximas: 20},
		},
		[]Sesion{
			{ID: 1, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 2},
			{ID: 2, IDAsignacion: 2, CodDocente: 11, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 2},
		})

	res := EvaluarPublicacion(s)

	assert.False(t, res.Lista())
	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "ROOM_CONFLICT")
}

func TestPublicacionDetectaDocenteDuplicado(t *testing.T) {
	s := NuevoSnapshot(7,
		[]DiaInfo{{ID: 1, Nombre: "Lunes", Orden: 1}},
		[]BloqueInfo{{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "09:00"}},
		[]AulaInfo{
			{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true},
			{ID: 2, Nombre: "690B", Capacidad: 30, Activo: true},
		},
		nil,
		[]Sesion{
			{ID: 1, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 2},
			{ID: 2, IDAsignacion: 2, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 2, Horas: 2},
		})

	res := EvaluarPublicacion(s)

	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "INSTRUCTOR_CONFLICT")
}
