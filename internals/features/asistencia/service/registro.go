package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	claseService "sigeho_backend/internals/features/horarios/clases/service"
)

// Errores de dominio del registro de asistencia; el controlador los mapea
// a respuestas 422, nunca se registra silenciosamente un intento inválido.
var (
	ErrDiaNoCorresponde = errors.New("la sesión no corresponde al día de hoy")
	ErrFueraDeVentana   = errors.New("fuera de la ventana de registro del bloque")
	ErrAulaNoCoincide   = errors.New("el aula escaneada no corresponde a la sesión")
)

// SolicitudRegistro reúne todo lo que la decisión de aceptar un marcado
// necesita, ya resuelto por el llamador; la validación es pura.
type SolicitudRegistro struct {
	Ahora    time.Time
	OrdenDia int // orden del día programado (lunes=1)

	HrInicio  string
	HrFin     string
	GraciaMin int

	// 0 cuando el método es botón; con QR debe coincidir con IDAula
	IDAula          uint
	IDAulaEscaneada uint
}

// ValidarRegistro decide si un marcado de asistencia procede: el día debe
// ser el programado, la hora caer dentro del bloque con la gracia
// configurada y, con QR, el aula escaneada coincidir con la de la sesión.
func ValidarRegistro(s SolicitudRegistro) error {
	if OrdenDeFecha(s.Ahora) != s.OrdenDia {
		return ErrDiaNoCorresponde
	}

	ini, err := claseService.ParseHora(s.HrInicio)
	if err != nil {
		return fmt.Errorf("hora de inicio inválida: %w", err)
	}
	fin, err := claseService.ParseHora(s.HrFin)
	if err != nil {
		return fmt.Errorf("hora de fin inválida: %w", err)
	}

	gracia := time.Duration(s.GraciaMin) * time.Minute
	momento := time.Date(0, 1, 1,
		s.Ahora.Hour(), s.Ahora.Minute(), s.Ahora.Second(), 0, time.UTC)
	if momento.Before(ini.Add(-gracia)) || momento.After(fin.Add(gracia)) {
		return ErrFueraDeVentana
	}

	if s.IDAulaEscaneada != 0 && s.IDAulaEscaneada != s.IDAula {
		return ErrAulaNoCoincide
	}
	return nil
}

// OrdenDeFecha mapea la fecha al orden canónico de días (lunes=1 ...
// sábado=6); el domingo queda en 7 y nunca coincide con un día lectivo.
func OrdenDeFecha(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// NuevoFolio genera el comprobante legible que recibe el docente al marcar.
func NuevoFolio() string {
	return "AS-" + strings.ToUpper(uuid.NewString()[:8])
}
