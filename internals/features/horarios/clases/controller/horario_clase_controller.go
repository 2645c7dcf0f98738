package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gestionModel "sigeho_backend/internals/features/catalogo/gestiones/model"
	asigModel "sigeho_backend/internals/features/horarios/asignaciones/model"
	"sigeho_backend/internals/features/horarios/clases/dto"
	"sigeho_backend/internals/features/horarios/clases/model"
	"sigeho_backend/internals/features/horarios/clases/service"
	helper "sigeho_backend/internals/helpers"
)

type HorarioClaseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHorarioClaseController(db *gorm.DB, v *validator.Validate) *HorarioClaseController {
	return &HorarioClaseController{DB: db, Validate: v}
}

// Una gestión publicada congela su horario; sólo Cancelar queda abierto.
var errGestionPublicada = fiber.NewError(fiber.StatusUnprocessableEntity,
	"La gestión ya fue publicada; el horario es inmutable")

// responderConflicto traduce el resultado de la transacción: un
// ConflictoError sale como 409 con la lista completa de razones, el
// vencimiento del lock como 503 reintentable, el resto vía FromFiberError.
func responderConflicto(c *fiber.Ctx, err error) error {
	var conflicto *service.ConflictoError
	if errors.As(err, &conflicto) {
		razones := make([]string, 0, len(conflicto.Reglas))
		for _, r := range conflicto.Reglas {
			razones = append(razones, r.Razon())
		}
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Conflicto de horario", razones)
	}
	if service.EsBloqueoOcupado(err) {
		return helper.Error(c, fiber.StatusServiceUnavailable,
			"La gestión está siendo modificada; intente nuevamente")
	}
	return helper.FromFiberError(c, err)
}

// Create coloca manualmente una sesión de clase. El chequeo de reglas y la
// escritura ocurren bajo el lock de la gestión, en la misma transacción.
func (ctl *HorarioClaseController) Create(c *fiber.Ctx) error {
	var req dto.CreateHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var creado model.HorarioClase
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var asig asigModel.AsignacionDocente
		if err := tx.First(&asig, "id_asignacion = ?", req.IDAsignacion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
			}
			return err
		}

		var gestion gestionModel.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", asig.IDGestion).Error; err != nil {
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

		carga, ok := snapshot.Carga(req.IDAsignacion)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Asignación sin carga en la gestión")
		}

		horas := req.Horas
		if horas == 0 {
			for _, b := range snapshot.Bloques {
				if b.ID == req.IDBloqueHorario {
					horas = b.Duracion()
					break
				}
			}
			if horas == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Bloque horario no encontrado")
			}
		}

		violadas := snapshot.Evaluar(service.Candidata{
			IDAsignacion: req.IDAsignacion,
			CodDocente:   carga.CodDocente,
			IDDia:        req.IDDia,
			IDBloque:     req.IDBloqueHorario,
			IDAula:       req.IDAula,
			Horas:        horas,
			Cupo:         carga.Cupo,
			HrsMaximas:   carga.HrsMaximas,
		})
		if len(violadas) > 0 {
			return &service.ConflictoError{Reglas: violadas}
		}

		creado = model.HorarioClase{
			IDGestion:       gestion.IDGestion,
			IDAsignacion:    req.IDAsignacion,
			IDDia:           req.IDDia,
			IDBloqueHorario: req.IDBloqueHorario,
			IDAula:          req.IDAula,
			Horas:           horas,
			Estado:          model.HorarioActivo,
		}
		return tx.Create(&creado).Error
	})
	if err != nil {
		return responderConflicto(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Horario creado correctamente", creado)
}

// Update mueve una sesión a otra celda; la sesión propia se excluye de la
// ocupación al reevaluar las reglas.
func (ctl *HorarioClaseController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var horario model.HorarioClase
		if err := tx.First(&horario, "id_horario_clase = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
			}
			return err
		}
		if !horario.Activo() {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"No se puede mover una sesión cancelada")
		}

		var gestion gestionModel.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", horario.IDGestion).Error; err != nil {
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
		carga, ok := snapshot.Carga(horario.IDAsignacion)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Asignación sin carga en la gestión")
		}

		violadas := snapshot.Evaluar(service.Candidata{
			IDAsignacion: horario.IDAsignacion,
			CodDocente:   carga.CodDocente,
			IDDia:        req.IDDia,
			IDBloque:     req.IDBloqueHorario,
			IDAula:       req.IDAula,
			Horas:        horario.Horas,
			Cupo:         carga.Cupo,
			HrsMaximas:   carga.HrsMaximas,
			Excluir:      horario.IDHorarioClase,
		})
		if len(violadas) > 0 {
			return &service.ConflictoError{Reglas: violadas}
		}

		return tx.Model(&horario).Updates(map[string]interface{}{
			"id_dia":            req.IDDia,
			"id_bloque_horario": req.IDBloqueHorario,
			"id_aula":           req.IDAula,
		}).Error
	})
	if err != nil {
		return responderConflicto(c, err)
	}
	return helper.Success(c, "Horario actualizado correctamente", nil)
}

// Cancelar libera la celda de calendario. Se permite aun con la gestión
// publicada (pérdida de aula de último momento); en ese caso la asignación
// queda marcada para recobertura manual.
func (ctl *HorarioClaseController) Cancelar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var horario model.HorarioClase
		if err := tx.First(&horario, "id_horario_clase = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
			}
			return err
		}
		if !horario.Activo() {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "La sesión ya está cancelada")
		}

		if err := service.BloquearGestion(tx, horario.IDGestion); err != nil {
			return err
		}

		if err := tx.Model(&horario).
			Update("estado", model.HorarioCancelado).Error; err != nil {
			return err
		}

		var gestion gestionModel.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", horario.IDGestion).Error; err != nil {
			return err
		}
		if gestion.Publicada() {
			return tx.Model(&asigModel.AsignacionDocente{}).
				Where("id_asignacion = ?", horario.IDAsignacion).
				Update("requiere_recobertura", true).Error
		}
		return nil
	})
	if err != nil {
		return responderConflicto(c, err)
	}
	return helper.Success(c, "Sesión cancelada correctamente", nil)
}

// Reactivar vuelve a colocar una sesión cancelada en su celda original,
// siempre que la gestión siga en borrador y la celda siga libre.
func (ctl *HorarioClaseController) Reactivar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var horario model.HorarioClase
		if err := tx.First(&horario, "id_horario_clase = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
			}
			return err
		}
		if horario.Activo() {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "La sesión ya está activa")
		}

		var gestion gestionModel.Gestion
		if err := tx.First(&gestion, "id_gestion = ?", horario.IDGestion).Error; err != nil {
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
		carga, ok := snapshot.Carga(horario.IDAsignacion)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Asignación sin carga en la gestión")
		}

		violadas := snapshot.Evaluar(service.Candidata{
			IDAsignacion: horario.IDAsignacion,
			CodDocente:   carga.CodDocente,
			IDDia:        horario.IDDia,
			IDBloque:     horario.IDBloqueHorario,
			IDAula:       horario.IDAula,
			Horas:        horario.Horas,
			Cupo:         carga.Cupo,
			HrsMaximas:   carga.HrsMaximas,
		})
		if len(violadas) > 0 {
			return &service.ConflictoError{Reglas: violadas}
		}

		return tx.Model(&horario).Update("estado", model.HorarioActivo).Error
	})
	if err != nil {
		return responderConflicto(c, err)
	}
	return helper.Success(c, "Sesión reactivada correctamente", nil)
}

// List devuelve las sesiones de una gestión con sus relaciones resueltas.
func (ctl *HorarioClaseController) List(c *fiber.Ctx) error {
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
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener horarios")
	}
	return helper.Success(c, "Horarios obtenidos correctamente", items)
}

// horarioSemanal arma las celdas de la grilla semanal de una gestión,
// opcionalmente filtradas por docente o aula.
func horarioSemanal(db *gorm.DB, idGestion, codDocente, idAula uint) ([]dto.HorarioSemanalItem, error) {
	query := db.Table("horarios_clase AS hc").
		Select(`hc.id_horario_clase, hc.id_dia, di.nombre AS dia, di.orden AS orden_dia,
			hc.id_bloque_horario AS id_bloque, b.nombre AS bloque,
			b.hr_inicio, b.hr_fin, au.nombre AS aula,
			m.nombre AS materia, m.sigla, g.nombre AS grupo,
			d.nombres || ' ' || d.apellidos AS docente,
			hc.horas, hc.estado`).
		Joins("JOIN dias di ON di.id_dia = hc.id_dia").
		Joins("JOIN bloques_horario b ON b.id_bloque_horario = hc.id_bloque_horario").
		Joins("JOIN aulas au ON au.id_aula = hc.id_aula").
		Joins("JOIN asignaciones_docente a ON a.id_asignacion = hc.id_asignacion").
		Joins("JOIN docentes d ON d.cod_docente = a.cod_docente").
		Joins("JOIN materias_grupo mg ON mg.id_materia_grupo = a.id_materia_grupo").
		Joins("JOIN materias m ON m.id_materia = mg.id_materia").
		Joins("JOIN grupos g ON g.id_grupo = mg.id_grupo").
		Where("hc.id_gestion = ? AND hc.estado = ?", idGestion, model.HorarioActivo).
		Order("di.orden ASC, b.orden ASC, au.nombre ASC")
	if codDocente != 0 {
		query = query.Where("a.cod_docente = ?", codDocente)
	}
	if idAula != 0 {
		query = query.Where("hc.id_aula = ?", idAula)
	}

	var items []dto.HorarioSemanalItem
	if err := query.Scan(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []dto.HorarioSemanalItem{}
	}
	return items, nil
}
