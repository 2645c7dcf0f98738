package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/aulas/dto"
	"sigeho_backend/internals/features/catalogo/aulas/model"
	helper "sigeho_backend/internals/helpers"
)

type AulaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAulaController(db *gorm.DB, v *validator.Validate) *AulaController {
	return &AulaController{DB: db, Validate: v}
}

func (ctl *AulaController) List(c *fiber.Ctx) error {
	var q dto.ListAulasQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros inválidos")
	}

	db := ctl.DB.Model(&model.Aula{}).Preload("TipoAula")
	if !q.IncluirInactivas {
		db = db.Where("activo = ?", true)
	}
	if q.Disponibles {
		db = db.Where("mantenimiento = ? AND activo = ?", false, true)
	}
	if q.EnMantenimiento {
		db = db.Where("mantenimiento = ?", true)
	}

	var aulas []model.Aula
	if err := db.Order("nombre ASC").Find(&aulas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener aulas")
	}
	return helper.Success(c, "Aulas obtenidas correctamente", aulas)
}

func (ctl *AulaController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var aula model.Aula
	if err := ctl.DB.Preload("TipoAula").First(&aula, "id_aula = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aula no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el aula")
	}
	return helper.Success(c, "Aula obtenida correctamente", aula)
}

func (ctl *AulaController) Create(c *fiber.Ctx) error {
	var req dto.CreateAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tipo model.TipoAula
	if err := ctl.DB.First(&tipo, "id_tipo_aula = ?", req.IDTipoAula).Error; err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Tipo de aula inexistente")
	}

	aula := model.Aula{
		IDTipoAula:    req.IDTipoAula,
		Nombre:        req.Nombre,
		Capacidad:     req.Capacidad,
		Piso:          req.Piso,
		Mantenimiento: req.Mantenimiento,
		Activo:        true,
	}
	if req.Activo != nil {
		aula.Activo = *req.Activo
	}
	if err := ctl.DB.Create(&aula).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear el aula")
	}
	aula.TipoAula = &tipo
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aula creada correctamente", aula)
}

func (ctl *AulaController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var aula model.Aula
	if err := ctl.DB.First(&aula, "id_aula = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aula no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el aula")
	}

	aula.IDTipoAula = req.IDTipoAula
	aula.Nombre = req.Nombre
	aula.Capacidad = req.Capacidad
	aula.Piso = req.Piso
	aula.Mantenimiento = req.Mantenimiento
	if err := ctl.DB.Save(&aula).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar el aula")
	}
	return helper.Success(c, "Aula actualizada correctamente", aula)
}

// Delete desactiva (soft delete); Reactivar la restaura.
func (ctl *AulaController) Delete(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, false, "Aula desactivada correctamente")
}

func (ctl *AulaController) Reactivar(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, true, "Aula reactivada correctamente")
}

func (ctl *AulaController) cambiarEstado(c *fiber.Ctx, activo bool, msg string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Model(&model.Aula{}).Where("id_aula = ?", id).Update("activo", activo)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al cambiar el estado del aula")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Aula no encontrada")
	}
	return helper.Success(c, msg, nil)
}

/* ===== Tipos de aula ===== */

func (ctl *AulaController) ListTipos(c *fiber.Ctx) error {
	var tipos []model.TipoAula
	if err := ctl.DB.Where("activo = ?", true).Order("nombre ASC").Find(&tipos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener tipos de aula")
	}
	return helper.Success(c, "Tipos de aula obtenidos correctamente", tipos)
}

func (ctl *AulaController) CreateTipo(c *fiber.Ctx) error {
	var req dto.CreateTipoAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	tipo := model.TipoAula{Nombre: req.Nombre, Activo: true}
	if err := ctl.DB.Create(&tipo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear el tipo de aula")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tipo de aula creado correctamente", tipo)
}
