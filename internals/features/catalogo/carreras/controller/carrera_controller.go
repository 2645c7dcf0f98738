package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/carreras/dto"
	"sigeho_backend/internals/features/catalogo/carreras/model"
	helper "sigeho_backend/internals/helpers"
)

type CarreraController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCarreraController(db *gorm.DB, v *validator.Validate) *CarreraController {
	return &CarreraController{DB: db, Validate: v}
}

func (ctl *CarreraController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&model.Carrera{})
	if !c.QueryBool("incluir_inactivas") {
		db = db.Where("activo = ?", true)
	}
	var carreras []model.Carrera
	if err := db.Order("nombre ASC").Find(&carreras).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener carreras")
	}
	return helper.Success(c, "Carreras obtenidas correctamente", carreras)
}

func (ctl *CarreraController) Create(c *fiber.Ctx) error {
	var req dto.CarreraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	carrera := model.Carrera{Nombre: req.Nombre, Codigo: req.Codigo, Activo: true}
	if err := ctl.DB.Create(&carrera).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear la carrera")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Carrera creada correctamente", carrera)
}

func (ctl *CarreraController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.CarreraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	var carrera model.Carrera
	if err := ctl.DB.First(&carrera, "id_carrera = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Carrera no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener la carrera")
	}
	carrera.Nombre = req.Nombre
	carrera.Codigo = req.Codigo
	if err := ctl.DB.Save(&carrera).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar la carrera")
	}
	return helper.Success(c, "Carrera actualizada correctamente", carrera)
}

func (ctl *CarreraController) Delete(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, false, "Carrera desactivada correctamente")
}

func (ctl *CarreraController) Reactivar(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, true, "Carrera reactivada correctamente")
}

func (ctl *CarreraController) cambiarEstado(c *fiber.Ctx, activo bool, msg string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Model(&model.Carrera{}).Where("id_carrera = ?", id).Update("activo", activo)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al cambiar el estado")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Carrera no encontrada")
	}
	return helper.Success(c, msg, nil)
}
