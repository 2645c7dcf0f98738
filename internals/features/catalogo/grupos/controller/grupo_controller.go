package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/grupos/dto"
	"sigeho_backend/internals/features/catalogo/grupos/model"
	helper "sigeho_backend/internals/helpers"
)

type GrupoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGrupoController(db *gorm.DB, v *validator.Validate) *GrupoController {
	return &GrupoController{DB: db, Validate: v}
}

func (ctl *GrupoController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&model.Grupo{})
	if !c.QueryBool("incluir_inactivos") {
		db = db.Where("activo = ?", true)
	}
	var grupos []model.Grupo
	if err := db.Order("nombre ASC").Find(&grupos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener grupos")
	}
	return helper.Success(c, "Grupos obtenidos correctamente", grupos)
}

func (ctl *GrupoController) Create(c *fiber.Ctx) error {
	var req dto.GrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	grupo := model.Grupo{Nombre: req.Nombre, Cupo: req.Cupo, Activo: true}
	if err := ctl.DB.Create(&grupo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear el grupo")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grupo creado correctamente", grupo)
}

func (ctl *GrupoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.GrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	var grupo model.Grupo
	if err := ctl.DB.First(&grupo, "id_grupo = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Grupo no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener el grupo")
	}
	grupo.Nombre = req.Nombre
	grupo.Cupo = req.Cupo
	if err := ctl.DB.Save(&grupo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar el grupo")
	}
	return helper.Success(c, "Grupo actualizado correctamente", grupo)
}

func (ctl *GrupoController) Delete(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, false, "Grupo desactivado correctamente")
}

func (ctl *GrupoController) Reactivar(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, true, "Grupo reactivado correctamente")
}

func (ctl *GrupoController) cambiarEstado(c *fiber.Ctx, activo bool, msg string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Model(&model.Grupo{}).Where("id_grupo = ?", id).Update("activo", activo)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al cambiar el estado")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Grupo no encontrado")
	}
	return helper.Success(c, msg, nil)
}
