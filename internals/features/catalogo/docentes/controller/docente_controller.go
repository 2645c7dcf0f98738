package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/docentes/dto"
	"sigeho_backend/internals/features/catalogo/docentes/model"
	helper "sigeho_backend/internals/helpers"
)

type DocenteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDocenteController(db *gorm.DB, v *validator.Validate) *DocenteController {
	return &DocenteController{DB: db, Validate: v}
}

func (ctl *DocenteController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&model.Docente{}).Preload("TipoContrato")
	if !c.QueryBool("incluir_inactivos") {
		db = db.Where("activo = ?", true)
	}
	var docentes []model.Docente
	if err := db.Order("apellidos ASC").Find(&docentes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener docentes")
	}
	return helper.Success(c, "Docentes obtenidos correctamente", docentes)
}

func (ctl *DocenteController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var docente model.Docente
	if err := ctl.DB.Preload("TipoContrato").First(&docente, "cod_docente = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Docente no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el docente")
	}
	return helper.Success(c, "Docente obtenido correctamente", docente)
}

func (ctl *DocenteController) Create(c *fiber.Ctx) error {
	var req dto.DocenteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var contrato model.TipoContrato
	if err := ctl.DB.First(&contrato, "id_tipo_contrato = ?", req.IDTipoContrato).Error; err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Tipo de contrato inexistente")
	}

	docente := model.Docente{
		IDUsuario:      req.IDUsuario,
		IDTipoContrato: req.IDTipoContrato,
		Nombres:        req.Nombres,
		Apellidos:      req.Apellidos,
		Titulo:         req.Titulo,
		Especialidad:   req.Especialidad,
		Activo:         true,
	}
	if err := ctl.DB.Create(&docente).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear el docente")
	}
	docente.TipoContrato = &contrato
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Docente creado correctamente", docente)
}

func (ctl *DocenteController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.DocenteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	var docente model.Docente
	if err := ctl.DB.First(&docente, "cod_docente = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Docente no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el docente")
	}
	docente.IDTipoContrato = req.IDTipoContrato
	docente.Nombres = req.Nombres
	docente.Apellidos = req.Apellidos
	docente.Titulo = req.Titulo
	docente.Especialidad = req.Especialidad
	if err := ctl.DB.Save(&docente).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar el docente")
	}
	return helper.Success(c, "Docente actualizado correctamente", docente)
}

func (ctl *DocenteController) Delete(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, false, "Docente desactivado correctamente")
}

func (ctl *DocenteController) Reactivar(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, true, "Docente reactivado correctamente")
}

func (ctl *DocenteController) cambiarEstado(c *fiber.Ctx, activo bool, msg string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Model(&model.Docente{}).Where("cod_docente = ?", id).Update("activo", activo)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al cambiar el estado")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Docente no encontrado")
	}
	return helper.Success(c, msg, nil)
}

/* ===== Tipos de contrato ===== */

func (ctl *DocenteController) ListTiposContrato(c *fiber.Ctx) error {
	var tipos []model.TipoContrato
	if err := ctl.DB.Order("nombre ASC").Find(&tipos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener tipos de contrato")
	}
	return helper.Success(c, "Tipos de contrato obtenidos correctamente", tipos)
}

func (ctl *DocenteController) CreateTipoContrato(c *fiber.Ctx) error {
	var req dto.TipoContratoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	tipo := model.TipoContrato{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		HrsMinimas:  req.HrsMinimas,
		HrsMaximas:  req.HrsMaximas,
	}
	if err := ctl.DB.Create(&tipo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear el tipo de contrato")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tipo de contrato creado correctamente", tipo)
}
