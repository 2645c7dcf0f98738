package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sigeho_backend/internals/features/asistencia/dto"
	"sigeho_backend/internals/features/asistencia/model"
	helper "sigeho_backend/internals/helpers"
	authhelper "sigeho_backend/internals/helpers/auth"
)

type JustificacionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewJustificacionController(db *gorm.DB, v *validator.Validate) *JustificacionController {
	return &JustificacionController{DB: db, Validate: v}
}

// List devuelve las justificaciones para revisión administrativa;
// por defecto sólo las pendientes.
func (ctl *JustificacionController) List(c *fiber.Ctx) error {
	query := ctl.DB.Preload("Asistencia").Preload("Asistencia.HorarioClase").
		Order("fecha_solicitud ASC")
	if c.Query("todas") != "true" {
		query = query.Where("estado = ?", model.JustificacionPendiente)
	}

	var justificaciones []model.Justificacion
	if err := query.Find(&justificaciones).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener justificaciones")
	}
	return helper.Success(c, "Justificaciones obtenidas correctamente", justificaciones)
}

// Revisar resuelve una justificación pendiente. La fila se toma con lock
// de escritura para que dos revisores no resuelvan la misma dos veces;
// una vez resuelta es inmutable.
func (ctl *JustificacionController) Revisar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.RevisarJustificacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	idUsuario, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var justificacion model.Justificacion
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&justificacion, "id_justificacion = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Justificación no encontrada")
			}
			return err
		}
		if justificacion.Estado != model.JustificacionPendiente {
			return fiber.NewError(fiber.StatusConflict, "La justificación ya fue resuelta")
		}

		ahora := time.Now()
		return tx.Model(&justificacion).Updates(map[string]interface{}{
			"estado":           model.EstadoJustificacion(req.Decision),
			"fecha_resolucion": ahora,
			"resuelto_por":     idUsuario,
		}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Justificación resuelta correctamente", nil)
}
