package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/gestiones/dto"
	"sigeho_backend/internals/features/catalogo/gestiones/model"
	helper "sigeho_backend/internals/helpers"
)

type GestionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGestionController(db *gorm.DB, v *validator.Validate) *GestionController {
	return &GestionController{DB: db, Validate: v}
}

func (ctl *GestionController) List(c *fiber.Ctx) error {
	var gestiones []model.Gestion
	if err := ctl.DB.Order("anio DESC, semestre DESC").Find(&gestiones).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener gestiones")
	}
	return helper.Success(c, "Gestiones obtenidas correctamente", gestiones)
}

func (ctl *GestionController) Create(c *fiber.Ctx) error {
	var req dto.GestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ini, fin, err := req.Fechas()
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	gestion := model.Gestion{
		Anio:              req.Anio,
		Semestre:          req.Semestre,
		FechaInicio:       ini,
		FechaFin:          fin,
		Activo:            false,
		EstadoPublicacion: model.PublicacionBorrador,
	}
	if err := ctl.DB.Create(&gestion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear la gestión")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gestión creada correctamente", gestion)
}

func (ctl *GestionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.GestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ini, fin, err := req.Fechas()
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var gestion model.Gestion
	if err := ctl.DB.First(&gestion, "id_gestion = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Gestión no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener la gestión")
	}
	if gestion.Publicada() {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Una gestión publicada no puede modificarse")
	}

	gestion.Anio = req.Anio
	gestion.Semestre = req.Semestre
	gestion.FechaInicio = ini
	gestion.FechaFin = fin
	if err := ctl.DB.Save(&gestion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar la gestión")
	}
	return helper.Success(c, "Gestión actualizada correctamente", gestion)
}

// Activar enciende la gestión indicada y apaga todas las demás en una
// sola transacción: el invariante es a lo sumo una activa en el sistema.
func (ctl *GestionController) Activar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var gestion model.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gestión no encontrada")
			}
			return err
		}
		if err := tx.Model(&model.Gestion{}).Where("activo = ?", true).
			Update("activo", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Gestion{}).Where("id_gestion = ?", id).
			Update("activo", true).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Gestión activada correctamente", nil)
}

// Delete elimina una gestión sólo si no está activa ni publicada y no
// tiene horarios; las gestiones con historia se conservan siempre.
func (ctl *GestionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var gestion model.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gestión no encontrada")
			}
			return err
		}
		if gestion.Activo || gestion.Publicada() {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"No se puede eliminar una gestión activa o publicada")
		}
		var horarios int64
		if err := tx.Table("horarios_clase").
			Where("id_gestion = ?", id).Count(&horarios).Error; err != nil {
			return err
		}
		if horarios > 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"La gestión tiene horarios registrados")
		}
		return tx.Delete(&model.Gestion{}, "id_gestion = ?", id).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Gestión eliminada correctamente", nil)
}
