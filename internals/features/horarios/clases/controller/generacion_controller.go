package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	gestionModel "sigeho_backend/internals/features/catalogo/gestiones/model"
	"sigeho_backend/internals/features/horarios/clases/dto"
	"sigeho_backend/internals/features/horarios/clases/model"
	"sigeho_backend/internals/features/horarios/clases/service"
	helper "sigeho_backend/internals/helpers"
)

type GeneracionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewGeneracionController(db *gorm.DB, v *validator.Validate, log *zap.Logger) *GeneracionController {
	return &GeneracionController{DB: db, Validate: v, Log: log}
}

// Generar ejecuta el motor automático sobre una gestión en borrador:
// bloquea la gestión, carga el snapshot, planifica en memoria y persiste
// las sesiones nuevas en la misma transacción. Las cargas ya cubiertas se
// saltan, así que repetir la llamada no duplica sesiones.
func (ctl *GeneracionController) Generar(c *fiber.Ctx) error {
	var req dto.GenerarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var resultado service.ResultadoGeneracion
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var gestion gestionModel.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", req.IDGestion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gestión no encontrada")
			}
			return err
		}
		if gestion.Publicada() {
			return errGestionPublicada
		}

		if err := service.BloquearGestion(tx, gestion.IDGestion); err != nil {
			return err
		}
		snapshot, err := service.CargarSnapshot(tx, gestion.IDGestion)
		if err != nil {
			return err
		}

		resultado = service.GenerarAutomatico(snapshot, req.IDCarrera)

		for _, ses := range resultado.Nuevas {
			fila := model.HorarioClase{
				IDGestion:       gestion.IDGestion,
				IDAsignacion:    ses.IDAsignacion,
				IDDia:           ses.IDDia,
				IDBloqueHorario: ses.IDBloque,
				IDAula:          ses.IDAula,
				Horas:           ses.Horas,
				Estado:          model.HorarioActivo,
			}
			if err := tx.Create(&fila).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return responderConflicto(c, err)
	}

	ctl.Log.Info("generación automática completada",
		zap.Uint("id_gestion", req.IDGestion),
		zap.Uint("id_carrera", req.IDCarrera),
		zap.Int("exitosas", resultado.Resumen.Exitosas),
		zap.Int("fallidas", resultado.Resumen.Fallidas),
		zap.Float64("porcentaje_exito", resultado.Resumen.PorcentajeExito))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"resumen": resultado.Resumen,
		"detalles": dto.DetallesGeneracion{
			Exitosas: resultado.Exitosas,
			Fallidas: resultado.Fallidas,
		},
	})
}
