package dto

import (
	"fmt"
	"strings"
	"time"
)

const layoutFecha = "2006-01-02"

type GestionRequest struct {
	Anio        int    `json:"anio" validate:"required,gte=2000,lte=2100"`
	Semestre    int    `json:"semestre" validate:"required,oneof=1 2"`
	FechaInicio string `json:"fecha_inicio" validate:"required"`
	FechaFin    string `json:"fecha_fin" validate:"required"`
}

// Fechas parsea y valida el rango del período.
func (r *GestionRequest) Fechas() (time.Time, time.Time, error) {
	ini, err := time.Parse(layoutFecha, strings.TrimSpace(r.FechaInicio))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha_inicio inválida (se espera YYYY-MM-DD)")
	}
	fin, err := time.Parse(layoutFecha, strings.TrimSpace(r.FechaFin))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha_fin inválida (se espera YYYY-MM-DD)")
	}
	if !fin.After(ini) {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha_fin debe ser posterior a fecha_inicio")
	}
	return ini, fin, nil
}
