package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotBase() *Snapshot {
	dias := []DiaInfo{
		{ID: 1, Nombre: "Lunes", Orden: 1},
		{ID: 2, Nombre: "Martes", Orden: 2},
	}
	bloques := []BloqueInfo{
		{ID: 1, Nombre: "B1", Orden: 1, HrInicio: "07:00", HrFin: "08:00"},
		{ID: 2, Nombre: "B2", Orden: 2, HrInicio: "08:00", HrFin: "09:00"},
	}
	aulas := []AulaInfo{
		{ID: 1, Nombre: "690A", Capacidad: 30, Activo: true},
		{ID: 2, Nombre: "690B", Capacidad: 10, Activo: true},
	}
	return NuevoSnapshot(7, dias, bloques, aulas, nil, nil)
}

func TestEvaluarSinViolaciones(t *testing.T) {
	s := snapshotBase()

	violadas := s.Evaluar(Candidata{
		IDAsignacion: 1, CodDocente: 10,
		IDDia: 1, IDBloque: 1, IDAula: 1,
		Horas: 2, Cupo: 25, HrsMaximas: 20,
	})
	assert.Empty(t, violadas)
}

func TestEvaluarChoqueDeAula(t *testing.T) {
	s := snapshotBase()
	s.AgregarSesion(Sesion{ID: 100, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 1})

	violadas := s.Evaluar(Candidata{
		IDAsignacion: 2, CodDocente: 11,
		IDDia: 1, IDBloque: 1, IDAula: 1,
		Horas: 1, Cupo: 20, HrsMaximas: 20,
	})
	assert.Equal(t, []Regla{ReglaChoqueAula}, violadas)
}

func TestEvaluarChoqueDeDocenteEnOtraAula(t *testing.T) {
	s := snapshotBase()
	s.AgregarSesion(Sesion{ID: 100, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 1})

	// mismo docente, misma celda de tiempo, aula distinta
	violadas := s.Evaluar(Candidata{
		IDAsignacion: 2, CodDocente: 10,
		IDDia: 1, IDBloque: 1, IDAula: 2,
		Horas: 1, Cupo: 5, HrsMaximas: 20,
	})
	assert.Equal(t, []Regla{ReglaChoqueDocente}, violadas)
}

func TestEvaluarCapacidadInsuficiente(t *testing.T) {
	s := snapshotBase()

	violadas := s.Evaluar(Candidata{
		IDAsignacion: 1, CodDocente: 10,
		IDDia: 1, IDBloque: 1, IDAula: 2, // capacidad 10
		Horas: 1, Cupo: 25, HrsMaximas: 20,
	})
	assert.Equal(t, []Regla{ReglaCapacidad}, violadas)
}

func TestEvaluarAulaEnMantenimiento(t *testing.T) {
	s := snapshotBase()
	s.aulas[1] = AulaInfo{ID: 1, Nombre: "690A", Capacidad: 30, Mantenimiento: true, Activo: true}

	violadas := s.Evaluar(Candidata{
		IDAsignacion: 1, CodDocente: 10,
		IDDia: 1, IDBloque: 1, IDAula: 1,
		Horas: 1, Cupo: 25, HrsMaximas: 20,
	})
	assert.Equal(t, []Regla{ReglaMantenimiento}, violadas)
}

func TestEvaluarCargaExcedida(t *testing.T) {
	s := snapshotBase()
	s.AgregarSesion(Sesion{ID: 100, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 19})

	violadas := s.Evaluar(Candidata{
		IDAsignacion: 2, CodDocente: 10,
		IDDia: 2, IDBloque: 2, IDAula: 1,
		Horas: 2, Cupo: 25, HrsMaximas: 20,
	})
	assert.Equal(t, []Regla{ReglaCargaExcedida}, violadas)
}

func TestEvaluarReportaTodasLasReglasEnOrden(t *testing.T) {
	s := snapshotBase()
	s.aulas[2] = AulaInfo{ID: 2, Nombre: "690B", Capacidad: 10, Mantenimiento: true, Activo: true}
	s.AgregarSesion(Sesion{ID: 100, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 2, Horas: 1})

	// aula ocupada + docente ocupado + capacidad + mantenimiento + carga
	violadas := s.Evaluar(Candidata{
		IDAsignacion: 2, CodDocente: 10,
		IDDia: 1, IDBloque: 1, IDAula: 2,
		Horas: 25, Cupo: 25, HrsMaximas: 20,
	})
	require.Equal(t, []Regla{
		ReglaChoqueAula,
		ReglaChoqueDocente,
		ReglaCapacidad,
		ReglaMantenimiento,
		ReglaCargaExcedida,
	}, violadas)
}

func TestEvaluarExcluyeSesionPropia(t *testing.T) {
	s := snapshotBase()
	s.AgregarSesion(Sesion{ID: 100, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 2})

	// mover la sesión a su propia celda no debe chocar consigo misma ni
	// contar sus horas dos veces
	violadas := s.Evaluar(Candidata{
		IDAsignacion: 1, CodDocente: 10,
		IDDia: 1, IDBloque: 1, IDAula: 1,
		Horas: 2, Cupo: 25, HrsMaximas: 2,
		Excluir: 100,
	})
	assert.Empty(t, violadas)
}

func TestCancelarLiberaLaCelda(t *testing.T) {
	s := snapshotBase()
	s.AgregarSesion(Sesion{ID: 100, IDAsignacion: 1, CodDocente: 10, IDDia: 1, IDBloque: 1, IDAula: 1, Horas: 1})

	s.QuitarSesion(100)

	violadas := s.Evaluar(Candidata{
		IDAsignacion: 2, CodDocente: 11,
		IDDia: 1, IDBloque: 1, IDAula: 1,
		Horas: 1, Cupo: 25, HrsMaximas: 20,
	})
	assert.Empty(t, violadas)
	assert.Zero(t, s.HorasDocente(10))
}

func TestRazonIncluyeIdentificadorYDescripcion(t *testing.T) {
	razon := ReglaChoqueDocente.Razon()
	assert.Contains(t, razon, "INSTRUCTOR_CONFLICT")
	assert.Contains(t, razon, "docente")
}
