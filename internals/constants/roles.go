package constants

// Roles del sistema; viajan en el claim "rol" del token.
const (
	RolAdmin   = "ADMIN"
	RolDocente = "DOCENTE"
)

var (
	SoloAdmin        = []string{RolAdmin}
	DocenteYSuperior = []string{RolDocente, RolAdmin}
)
