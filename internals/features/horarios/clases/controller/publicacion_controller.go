package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	gestionModel "sigeho_backend/internals/features/catalogo/gestiones/model"
	"sigeho_backend/internals/features/horarios/clases/dto"
	"sigeho_backend/internals/features/horarios/clases/service"
	helper "sigeho_backend/internals/helpers"
	authhelper "sigeho_backend/internals/helpers/auth"
)

type PublicacionController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewPublicacionController(db *gorm.DB, log *zap.Logger) *PublicacionController {
	return &PublicacionController{DB: db, Log: log}
}

// Publicar congela el horario de la gestión activa: BORRADOR → PUBLICADA.
// Ninguna precondición corta la evaluación; el cliente recibe juntas todas
// las asignaciones pendientes y cualquier error de integridad.
//
//	404 sin gestión activa · 409 ya publicada · 422 no lista · 503 lock
func (ctl *PublicacionController) Publicar(c *fiber.Ctx) error {
	var resultado service.ResultadoPublicacion
	var gestion gestionModel.Gestion

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&gestion, "activo = ?", true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "No hay una gestión activa para publicar")
			}
			return err
		}
		if gestion.Publicada() {
			return fiber.NewError(fiber.StatusConflict, "La gestión ya fue publicada")
		}

		if err := service.BloquearGestion(tx, gestion.IDGestion); err != nil {
			return err
		}
		snapshot, err := service.CargarSnapshot(tx, gestion.IDGestion)
		if err != nil {
			return err
		}

		resultado = service.EvaluarPublicacion(snapshot)
		if !resultado.Lista() {
			// el rollback es un no-op: no se escribió nada todavía
			return fiber.NewError(fiber.StatusUnprocessableEntity, "El horario no está listo para publicar")
		}

		ahora := time.Now()
		return tx.Model(&gestion).Updates(map[string]interface{}{
			"estado_publicacion": gestionModel.PublicacionPublicada,
			"fecha_publicacion":  ahora,
		}).Error
	})

	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusUnprocessableEntity {
			if len(resultado.Errores) > 0 {
				// inalcanzable si los caminos de asignación aplicaron las
				// reglas; cualquier entrada es un bug de integridad
				ctl.Log.Error("conflictos de integridad al publicar",
					zap.Uint("id_gestion", gestion.IDGestion),
					zap.Strings("errores", resultado.Errores))
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success":                 false,
				"message":                 fe.Message,
				"errores":                 resultado.Errores,
				"asignaciones_pendientes": resultado.Pendientes,
			})
		}
		return responderConflicto(c, err)
	}

	ctl.Log.Info("gestión publicada",
		zap.Uint("id_gestion", gestion.IDGestion),
		zap.Int("horarios_publicados", resultado.Estadisticas.HorariosPublicados),
		zap.Int("docentes_afectados", resultado.Estadisticas.DocentesAfectados))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"gestion":      gestion.Etiqueta(),
		"estadisticas": resultado.Estadisticas,
	})
}

// Semanal devuelve la grilla completa de la gestión activa (o la indicada
// por query), con filtros opcionales por docente y aula.
func (ctl *PublicacionController) Semanal(c *fiber.Ctx) error {
	var q dto.ListHorariosQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros inválidos")
	}

	idGestion := q.IDGestion
	if idGestion == 0 {
		var gestion gestionModel.Gestion
		if err := ctl.DB.First(&gestion, "activo = ?", true).Error; err != nil {
			return helper.Error(c, fiber.StatusNotFound, "No hay una gestión activa")
		}
		idGestion = gestion.IDGestion
	}

	items, err := horarioSemanal(ctl.DB, idGestion, q.CodDocente, q.IDAula)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el horario semanal")
	}
	return helper.Success(c, "Horario semanal obtenido correctamente", items)
}

// Personales devuelve el horario del docente autenticado en la gestión
// activa; sólo gestiones publicadas son visibles para los docentes.
func (ctl *PublicacionController) Personales(c *fiber.Ctx) error {
	codDocente, err := authhelper.GetCodDocente(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var gestion gestionModel.Gestion
	if err := ctl.DB.First(&gestion, "activo = ?", true).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "No hay una gestión activa")
	}
	if !gestion.Publicada() {
		return helper.Error(c, fiber.StatusConflict, "El horario de la gestión aún no fue publicado")
	}

	items, err := horarioSemanal(ctl.DB, gestion.IDGestion, codDocente, 0)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el horario personal")
	}
	return helper.Success(c, "Horario personal obtenido correctamente", items)
}
