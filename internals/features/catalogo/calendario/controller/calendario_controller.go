package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/calendario/model"
	helper "sigeho_backend/internals/helpers"
)

type CalendarioController struct {
	DB *gorm.DB
}

func NewCalendarioController(db *gorm.DB) *CalendarioController {
	return &CalendarioController{DB: db}
}

// ListDias devuelve los días lectivos en orden canónico, para selects.
func (ctl *CalendarioController) ListDias(c *fiber.Ctx) error {
	var dias []model.Dia
	if err := ctl.DB.Order("orden ASC").Find(&dias).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener días")
	}
	return helper.Success(c, "Días obtenidos correctamente", dias)
}

// ListBloques devuelve los bloques horarios ordenados por hora de inicio.
func (ctl *CalendarioController) ListBloques(c *fiber.Ctx) error {
	var bloques []model.BloqueHorario
	if err := ctl.DB.Order("orden ASC").Find(&bloques).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener bloques horarios")
	}
	return helper.Success(c, "Bloques horarios obtenidos correctamente", bloques)
}
