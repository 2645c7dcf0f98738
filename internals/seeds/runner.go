package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	calModel "sigeho_backend/internals/features/catalogo/calendario/model"
	docenteModel "sigeho_backend/internals/features/catalogo/docentes/model"
)

// RunAllSeeds carga los catálogos fijos que el motor necesita para operar:
// días lectivos, bloques horarios y tipos de contrato. Idempotente: los
// registros existentes no se tocan.
func RunAllSeeds(db *gorm.DB) {
	seedDias(db)
	seedBloques(db)
	seedTiposContrato(db)
}

func seedDias(db *gorm.DB) {
	dias := []calModel.Dia{
		{Nombre: "Lunes", Orden: 1},
		{Nombre: "Martes", Orden: 2},
		{Nombre: "Miércoles", Orden: 3},
		{Nombre: "Jueves", Orden: 4},
		{Nombre: "Viernes", Orden: 5},
		{Nombre: "Sábado", Orden: 6},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dias).Error; err != nil {
		log.Printf("seed de días falló: %v", err)
	}
}

func seedBloques(db *gorm.DB) {
	bloques := []calModel.BloqueHorario{
		{Nombre: "B1", HrInicio: "07:00", HrFin: "09:15", Orden: 1},
		{Nombre: "B2", HrInicio: "09:15", HrFin: "11:30", Orden: 2},
		{Nombre: "B3", HrInicio: "11:30", HrFin: "13:45", Orden: 3},
		{Nombre: "B4", HrInicio: "14:00", HrFin: "16:15", Orden: 4},
		{Nombre: "B5", HrInicio: "16:15", HrFin: "18:30", Orden: 5},
		{Nombre: "B6", HrInicio: "18:30", HrFin: "20:45", Orden: 6},
		// sábado sólo turnos de mañana
		{Nombre: "S1", HrInicio: "08:00", HrFin: "10:15", Orden: 7, DiasAplicables: []int64{6}},
		{Nombre: "S2", HrInicio: "10:15", HrFin: "12:30", Orden: 8, DiasAplicables: []int64{6}},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&bloques).Error; err != nil {
		log.Printf("seed de bloques falló: %v", err)
	}
}

func seedTiposContrato(db *gorm.DB) {
	tiposContrato := []docenteModel.TipoContrato{
		{Nombre: "TIEMPO COMPLETO", HrsMinimas: 20, HrsMaximas: 40},
		{Nombre: "MEDIO TIEMPO", HrsMinimas: 10, HrsMaximas: 20},
		{Nombre: "TIEMPO HORARIO", HrsMinimas: 2, HrsMaximas: 16},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tiposContrato).Error; err != nil {
		log.Printf("seed de tipos de contrato falló: %v", err)
	}
}
