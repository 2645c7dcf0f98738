package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/materias/dto"
	"sigeho_backend/internals/features/catalogo/materias/model"
	helper "sigeho_backend/internals/helpers"
)

type MateriaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMateriaController(db *gorm.DB, v *validator.Validate) *MateriaController {
	return &MateriaController{DB: db, Validate: v}
}

func (ctl *MateriaController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&model.Materia{}).Preload("Carrera")
	if !c.QueryBool("incluir_inactivas") {
		db = db.Where("activo = ?", true)
	}
	if idCarrera := c.QueryInt("id_carrera"); idCarrera > 0 {
		db = db.Where("id_carrera = ?", idCarrera)
	}
	var materias []model.Materia
	if err := db.Order("nombre ASC").Find(&materias).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener materias")
	}
	return helper.Success(c, "Materias obtenidas correctamente", materias)
}

func (ctl *MateriaController) Create(c *fiber.Ctx) error {
	var req dto.MateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	materia := model.Materia{
		IDCarrera: req.IDCarrera,
		Nombre:    req.Nombre,
		Sigla:     req.Sigla,
		Activo:    true,
	}
	if err := ctl.DB.Create(&materia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear la materia")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materia creada correctamente", materia)
}

func (ctl *MateriaController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.MateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	var materia model.Materia
	if err := ctl.DB.First(&materia, "id_materia = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Materia no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener la materia")
	}
	materia.IDCarrera = req.IDCarrera
	materia.Nombre = req.Nombre
	materia.Sigla = req.Sigla
	if err := ctl.DB.Save(&materia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar la materia")
	}
	return helper.Success(c, "Materia actualizada correctamente", materia)
}

func (ctl *MateriaController) Delete(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, false, "Materia desactivada correctamente")
}

func (ctl *MateriaController) Reactivar(c *fiber.Ctx) error {
	return ctl.cambiarEstado(c, true, "Materia reactivada correctamente")
}

func (ctl *MateriaController) cambiarEstado(c *fiber.Ctx, activo bool, msg string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Model(&model.Materia{}).Where("id_materia = ?", id).Update("activo", activo)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al cambiar el estado")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Materia no encontrada")
	}
	return helper.Success(c, msg, nil)
}

/* ===== Materia-Grupo (oferta) ===== */

func (ctl *MateriaController) ListMateriasGrupo(c *fiber.Ctx) error {
	var filas []model.MateriaGrupo
	err := ctl.DB.Preload("Materia").Preload("Grupo").
		Where("activo = ?", true).Find(&filas).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener materias-grupo")
	}
	return helper.Success(c, "Materias-grupo obtenidas correctamente", filas)
}

func (ctl *MateriaController) CreateMateriaGrupo(c *fiber.Ctx) error {
	var req dto.MateriaGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	mg := model.MateriaGrupo{IDMateria: req.IDMateria, IDGrupo: req.IDGrupo, Activo: true}
	if err := ctl.DB.Create(&mg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear la materia-grupo")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materia-grupo creada correctamente", mg)
}
