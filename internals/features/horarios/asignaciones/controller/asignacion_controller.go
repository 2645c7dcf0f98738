package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docenteModel "sigeho_backend/internals/features/catalogo/docentes/model"
	gestionModel "sigeho_backend/internals/features/catalogo/gestiones/model"
	materiaModel "sigeho_backend/internals/features/catalogo/materias/model"
	"sigeho_backend/internals/features/horarios/asignaciones/dto"
	"sigeho_backend/internals/features/horarios/asignaciones/model"
	helper "sigeho_backend/internals/helpers"
)

type AsignacionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAsignacionController(db *gorm.DB, v *validator.Validate) *AsignacionController {
	return &AsignacionController{DB: db, Validate: v}
}

func gestionActiva(tx *gorm.DB) (*gestionModel.Gestion, error) {
	var g gestionModel.Gestion
	if err := tx.First(&g, "activo = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No hay una gestión activa")
		}
		return nil, err
	}
	return &g, nil
}

// List devuelve las asignaciones de la gestión activa (o de la indicada),
// con el total de horas ya programadas en horarios por asignación.
func (ctl *AsignacionController) List(c *fiber.Ctx) error {
	var q dto.ListAsignacionesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros inválidos")
	}

	idGestion := q.IDGestion
	if idGestion == 0 {
		g, err := gestionActiva(ctl.DB)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		idGestion = g.IDGestion
	}

	query := ctl.DB.Table("asignaciones_docente AS a").
		Select(`a.id_asignacion, a.id_gestion, a.cod_docente,
			d.nombres || ' ' || d.apellidos AS docente,
			a.id_materia_grupo, m.nombre AS materia, m.sigla, g.nombre AS grupo,
			a.hrs_asignadas, a.requiere_recobertura,
			COALESCE((SELECT SUM(h.horas) FROM horarios_clase h
				WHERE h.id_asignacion = a.id_asignacion AND h.estado = ?), 0) AS hrs_programadas`,
			"ACTIVO").
		Joins("JOIN docentes d ON d.cod_docente = a.cod_docente").
		Joins("JOIN materias_grupo mg ON mg.id_materia_grupo = a.id_materia_grupo").
		Joins("JOIN materias m ON m.id_materia = mg.id_materia").
		Joins("JOIN grupos g ON g.id_grupo = mg.id_grupo").
		Where("a.id_gestion = ?", idGestion).
		Order("docente ASC, m.sigla ASC")
	if q.CodDocente != 0 {
		query = query.Where("a.cod_docente = ?", q.CodDocente)
	}

	var items []dto.AsignacionResponse
	if err := query.Scan(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener asignaciones")
	}
	return helper.Success(c, "Asignaciones obtenidas correctamente", items)
}

// Create registra una asignación docente en la gestión activa. Las horas
// nuevas no pueden exceder el máximo del contrato del docente.
func (ctl *AsignacionController) Create(c *fiber.Ctx) error {
	var req dto.CreateAsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var creada model.AsignacionDocente
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		gestion, err := gestionActiva(tx)
		if err != nil {
			return err
		}
		if gestion.Publicada() {
			return fiber.NewError(fiber.StatusConflict,
				"La gestión activa ya fue publicada; no admite nuevas asignaciones")
		}

		var docente docenteModel.Docente
		if err := tx.Preload("TipoContrato").
			First(&docente, "cod_docente = ? AND activo = ?", req.CodDocente, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Docente no encontrado o inactivo")
			}
			return err
		}

		var mg materiaModel.MateriaGrupo
		if err := tx.First(&mg,
			"id_materia_grupo = ? AND activo = ?", req.IDMateriaGrupo, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Materia-grupo no encontrada o inactiva")
			}
			return err
		}

		var dup int64
		if err := tx.Model(&model.AsignacionDocente{}).
			Where("id_gestion = ? AND cod_docente = ? AND id_materia_grupo = ?",
				gestion.IDGestion, req.CodDocente, req.IDMateriaGrupo).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict,
				"El docente ya tiene asignada esta materia-grupo en la gestión")
		}

		var horasActuales int64
		if err := tx.Model(&model.AsignacionDocente{}).
			Where("id_gestion = ? AND cod_docente = ?", gestion.IDGestion, req.CodDocente).
			Select("COALESCE(SUM(hrs_asignadas), 0)").
			Scan(&horasActuales).Error; err != nil {
			return err
		}
		if docente.TipoContrato != nil &&
			int(horasActuales)+req.HrsAsignadas > docente.TipoContrato.HrsMaximas {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("La carga superaría el máximo del contrato (%d/%d hrs)",
					int(horasActuales)+req.HrsAsignadas, docente.TipoContrato.HrsMaximas))
		}

		creada = model.AsignacionDocente{
			IDGestion:      gestion.IDGestion,
			CodDocente:     req.CodDocente,
			IDMateriaGrupo: req.IDMateriaGrupo,
			HrsAsignadas:   req.HrsAsignadas,
		}
		return tx.Create(&creada).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asignación creada correctamente", creada)
}

// Update ajusta las horas de una asignación, respetando el máximo del
// contrato y las horas ya programadas en horarios activos.
func (ctl *AsignacionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateAsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var asig model.AsignacionDocente
		if err := tx.First(&asig, "id_asignacion = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
			}
			return err
		}

		var programadas int64
		if err := tx.Table("horarios_clase").
			Where("id_asignacion = ? AND estado = ?", id, "ACTIVO").
			Select("COALESCE(SUM(horas), 0)").
			Scan(&programadas).Error; err != nil {
			return err
		}
		if int(programadas) > req.HrsAsignadas {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Ya hay %d hrs programadas; cancele sesiones antes de reducir", programadas))
		}

		var otras int64
		if err := tx.Model(&model.AsignacionDocente{}).
			Where("id_gestion = ? AND cod_docente = ? AND id_asignacion <> ?",
				asig.IDGestion, asig.CodDocente, asig.IDAsignacion).
			Select("COALESCE(SUM(hrs_asignadas), 0)").
			Scan(&otras).Error; err != nil {
			return err
		}
		var docente docenteModel.Docente
		if err := tx.Preload("TipoContrato").
			First(&docente, "cod_docente = ?", asig.CodDocente).Error; err != nil {
			return err
		}
		if docente.TipoContrato != nil &&
			int(otras)+req.HrsAsignadas > docente.TipoContrato.HrsMaximas {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("La carga superaría el máximo del contrato (%d/%d hrs)",
					int(otras)+req.HrsAsignadas, docente.TipoContrato.HrsMaximas))
		}

		return tx.Model(&asig).Update("hrs_asignadas", req.HrsAsignadas).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Asignación actualizada correctamente", nil)
}

// Delete elimina una asignación sin sesiones programadas.
func (ctl *AsignacionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var horarios int64
		if err := tx.Table("horarios_clase").
			Where("id_asignacion = ? AND estado = ?", id, "ACTIVO").
			Count(&horarios).Error; err != nil {
			return err
		}
		if horarios > 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"La asignación tiene sesiones activas en el horario")
		}
		res := tx.Delete(&model.AsignacionDocente{}, "id_asignacion = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Asignación eliminada correctamente", nil)
}
