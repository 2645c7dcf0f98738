package service

// Snapshot es el calendario de recursos de una gestión: índices de
// ocupación por (aula, día, bloque) y (docente, día, bloque) más los
// catálogos que las reglas necesitan. Se carga dentro de la transacción
// que lo consume y nunca se persiste; la verdad almacenada son las filas
// ACTIVO de horarios_clase.
type Snapshot struct {
	IDGestion uint

	Dias    []DiaInfo
	Bloques []BloqueInfo
	Aulas   []AulaInfo
	Cargas  []CargaItem

	aulas        map[uint]AulaInfo
	ocupaAula    map[llaveSlot]uint // -> id_horario_clase
	ocupaDocente map[llaveSlot]uint
	horasDocente map[uint]int
	sesiones     map[uint]Sesion
}

type llaveSlot struct {
	Recurso uint // id_aula o cod_docente según el índice
	Dia     uint
	Bloque  uint
}

type DiaInfo struct {
	ID     uint
	Nombre string
	Orden  int
}

type BloqueInfo struct {
	ID             uint
	Nombre         string
	Orden          int
	HrInicio       string
	HrFin          string
	DiasAplicables []int
}

// AplicaEnDia indica si el bloque puede usarse en el día dado (por orden).
func (b BloqueInfo) AplicaEnDia(orden int) bool {
	if len(b.DiasAplicables) == 0 {
		return true
	}
	for _, d := range b.DiasAplicables {
		if d == orden {
			return true
		}
	}
	return false
}

// Duracion del bloque en horas académicas, mínimo 1.
func (b BloqueInfo) Duracion() int {
	ini, errI := ParseHora(b.HrInicio)
	fin, errF := ParseHora(b.HrFin)
	if errI != nil || errF != nil || !fin.After(ini) {
		return 1
	}
	horas := int(fin.Sub(ini).Hours())
	if horas < 1 {
		return 1
	}
	return horas
}

type AulaInfo struct {
	ID            uint
	Nombre        string
	Capacidad     int
	Piso          int
	TipoAula      string
	Mantenimiento bool
	Activo        bool
}

// CargaItem es una asignación docente vista por el motor: la obligación,
// cuánto ya está cubierto por sesiones ACTIVO y el tope contractual.
type CargaItem struct {
	IDAsignacion uint
	CodDocente   uint
	IDCarrera    uint
	Materia      string
	Grupo        string
	Cupo         int
	HrsAsignadas int
	HrsActivas   int
	HrsMaximas   int
}

func (c CargaItem) Restante() int {
	r := c.HrsAsignadas - c.HrsActivas
	if r < 0 {
		return 0
	}
	return r
}

type Sesion struct {
	ID           uint
	IDAsignacion uint
	CodDocente   uint
	IDDia        uint
	IDBloque     uint
	IDAula       uint
	Horas        int
}

// NuevoSnapshot arma los índices a partir de los datos ya cargados.
func NuevoSnapshot(idGestion uint, dias []DiaInfo, bloques []BloqueInfo, aulas []AulaInfo, cargas []CargaItem, sesiones []Sesion) *Snapshot {
	s := &Snapshot{
		IDGestion:    idGestion,
		Dias:         dias,
		Bloques:      bloques,
		Aulas:        aulas,
		Cargas:       cargas,
		aulas:        make(map[uint]AulaInfo, len(aulas)),
		ocupaAula:    make(map[llaveSlot]uint),
		ocupaDocente: make(map[llaveSlot]uint),
		horasDocente: make(map[uint]int),
		sesiones:     make(map[uint]Sesion, len(sesiones)),
	}
	for _, a := range aulas {
		s.aulas[a.ID] = a
	}
	for _, ses := range sesiones {
		s.AgregarSesion(ses)
	}
	return s
}

// AgregarSesion indexa una sesión ACTIVO en ambos mapas de ocupación.
func (s *Snapshot) AgregarSesion(ses Sesion) {
	s.sesiones[ses.ID] = ses
	s.ocupaAula[llaveSlot{ses.IDAula, ses.IDDia, ses.IDBloque}] = ses.ID
	s.ocupaDocente[llaveSlot{ses.CodDocente, ses.IDDia, ses.IDBloque}] = ses.ID
	s.horasDocente[ses.CodDocente] += ses.Horas
}

// QuitarSesion libera la celda de calendario de una sesión (cancelación).
func (s *Snapshot) QuitarSesion(id uint) {
	ses, ok := s.sesiones[id]
	if !ok {
		return
	}
	delete(s.sesiones, id)
	delete(s.ocupaAula, llaveSlot{ses.IDAula, ses.IDDia, ses.IDBloque})
	delete(s.ocupaDocente, llaveSlot{ses.CodDocente, ses.IDDia, ses.IDBloque})
	s.horasDocente[ses.CodDocente] -= ses.Horas
}

func (s *Snapshot) AulaOcupada(idAula, idDia, idBloque uint, excluir uint) bool {
	id, ok := s.ocupaAula[llaveSlot{idAula, idDia, idBloque}]
	return ok && id != excluir
}

func (s *Snapshot) DocenteOcupado(codDocente, idDia, idBloque uint, excluir uint) bool {
	id, ok := s.ocupaDocente[llaveSlot{codDocente, idDia, idBloque}]
	return ok && id != excluir
}

func (s *Snapshot) HorasDocente(codDocente uint) int {
	return s.horasDocente[codDocente]
}

func (s *Snapshot) Aula(id uint) (AulaInfo, bool) {
	a, ok := s.aulas[id]
	return a, ok
}

func (s *Snapshot) Sesion(id uint) (Sesion, bool) {
	ses, ok := s.sesiones[id]
	return ses, ok
}

func (s *Snapshot) Carga(idAsignacion uint) (CargaItem, bool) {
	for _, c := range s.Cargas {
		if c.IDAsignacion == idAsignacion {
			return c, true
		}
	}
	return CargaItem{}, false
}
