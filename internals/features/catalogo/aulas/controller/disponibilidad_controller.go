package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/aulas/dto"
	"sigeho_backend/internals/features/catalogo/aulas/model"
	gestionModel "sigeho_backend/internals/features/catalogo/gestiones/model"
	claseModel "sigeho_backend/internals/features/horarios/clases/model"
	helper "sigeho_backend/internals/helpers"
)

// Disponibilidad reporta el estado de cada aula para un (día, bloque)
// contra la gestión activa. Lectura pura: corre sin lock, bajo snapshot
// MVCC.
func (ctl *AulaController) Disponibilidad(c *fiber.Ctx) error {
	dia := c.QueryInt("id_dia")
	bloque := c.QueryInt("id_bloque_horario")
	if dia <= 0 || bloque <= 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Debe indicar id_dia e id_bloque_horario")
	}

	var gestion gestionModel.Gestion
	if err := ctl.DB.First(&gestion, "activo = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No hay una gestión activa")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener la gestión activa")
	}

	var aulas []model.Aula
	if err := ctl.DB.Preload("TipoAula").Order("nombre ASC").Find(&aulas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener aulas")
	}

	var ocupadasIDs []uint
	err := ctl.DB.Model(&claseModel.HorarioClase{}).
		Where("id_gestion = ? AND id_dia = ? AND id_bloque_horario = ? AND estado = ?",
			gestion.IDGestion, dia, bloque, claseModel.HorarioActivo).
		Pluck("id_aula", &ocupadasIDs).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al consultar ocupación")
	}
	ocupadas := make(map[uint]struct{}, len(ocupadasIDs))
	for _, id := range ocupadasIDs {
		ocupadas[id] = struct{}{}
	}

	data := make([]dto.DisponibilidadItem, 0, len(aulas))
	resumen := dto.DisponibilidadResumen{Total: len(aulas)}
	for _, a := range aulas {
		item := dto.DisponibilidadItem{
			IDAula:    a.IDAula,
			Nombre:    a.Nombre,
			Capacidad: a.Capacidad,
			Piso:      a.Piso,
		}
		if a.TipoAula != nil {
			item.TipoAula = a.TipoAula.Nombre
		}
		switch {
		case !a.Activo || a.Mantenimiento:
			item.Estado = "NO_DISPONIBLE"
			resumen.NoDisponibles++
		case contiene(ocupadas, a.IDAula):
			item.Estado = "OCUPADA"
			resumen.Ocupadas++
		default:
			item.Estado = "DISPONIBLE"
			resumen.Disponibles++
		}
		data = append(data, item)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"resumen": resumen,
	})
}

func contiene(set map[uint]struct{}, id uint) bool {
	_, ok := set[id]
	return ok
}
