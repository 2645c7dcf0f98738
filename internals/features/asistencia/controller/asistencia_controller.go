package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigeho_backend/internals/configs"
	"sigeho_backend/internals/features/asistencia/dto"
	"sigeho_backend/internals/features/asistencia/model"
	"sigeho_backend/internals/features/asistencia/service"
	claseModel "sigeho_backend/internals/features/horarios/clases/model"
	helper "sigeho_backend/internals/helpers"
	authhelper "sigeho_backend/internals/helpers/auth"
)

type AsistenciaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAsistenciaController(db *gorm.DB, v *validator.Validate) *AsistenciaController {
	return &AsistenciaController{DB: db, Validate: v}
}

// Registrar marca asistencia por botón con geolocalización.
func (ctl *AsistenciaController) Registrar(c *fiber.Ctx) error {
	var req dto.RegistrarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.registrar(c, req.IDHorarioClase, 0, req.Coordenadas, model.MetodoBoton)
}

// RegistrarQR marca asistencia escaneando el QR del aula; el aula
// escaneada debe ser la de la sesión.
func (ctl *AsistenciaController) RegistrarQR(c *fiber.Ctx) error {
	var req dto.RegistrarQRRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.registrar(c, req.IDHorarioClase, req.IDAulaEscaneada, req.Coordenadas, model.MetodoQR)
}

func (ctl *AsistenciaController) registrar(c *fiber.Ctx, idHorario, idAulaEscaneada uint, coords dto.Coordenadas, metodo model.MetodoRegistro) error {
	codDocente, err := authhelper.GetCodDocente(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var folio string
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var horario claseModel.HorarioClase
		if err := tx.Preload("BloqueHorario").Preload("Dia").Preload("Asignacion").
			First(&horario, "id_horario_clase = ?", idHorario).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
			}
			return err
		}
		if !horario.Activo() {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "La sesión está cancelada")
		}
		if horario.Asignacion == nil || horario.Asignacion.CodDocente != codDocente {
			return fiber.NewError(fiber.StatusForbidden, "La sesión no pertenece al docente")
		}

		var publicada bool
		if err := tx.Table("gestiones").
			Select("estado_publicacion = 'PUBLICADA'").
			Where("id_gestion = ?", horario.IDGestion).
			Scan(&publicada).Error; err != nil {
			return err
		}
		if !publicada {
			return fiber.NewError(fiber.StatusConflict, "El horario de la gestión aún no fue publicado")
		}

		ahora := time.Now()
		if err := service.ValidarRegistro(service.SolicitudRegistro{
			Ahora:           ahora,
			OrdenDia:        horario.Dia.Orden,
			HrInicio:        horario.BloqueHorario.HrInicio,
			HrFin:           horario.BloqueHorario.HrFin,
			GraciaMin:       configs.AsistenciaGraciaMin,
			IDAula:          horario.IDAula,
			IDAulaEscaneada: idAulaEscaneada,
		}); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
		var existentes int64
		if err := tx.Model(&model.Asistencia{}).
			Where("id_horario_clase = ? AND fecha = ?", idHorario, hoy).
			Count(&existentes).Error; err != nil {
			return err
		}
		if existentes > 0 {
			return fiber.NewError(fiber.StatusConflict, "La asistencia de hoy ya fue registrada")
		}

		m := metodo
		folio = service.NuevoFolio()
		fila := model.Asistencia{
			IDHorarioClase: idHorario,
			CodDocente:     codDocente,
			Fecha:          hoy,
			HoraRegistro:   &ahora,
			Latitud:        &coords.Latitud,
			Longitud:       &coords.Longitud,
			Metodo:         &m,
			Estado:         model.AsistenciaPresente,
			Folio:          folio,
		}
		return tx.Create(&fila).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Asistencia registrada correctamente", fiber.Map{"folio": folio})
}

// Ausencias lista las ausencias del docente autenticado con el estado de
// su justificación, si la hay.
func (ctl *AsistenciaController) Ausencias(c *fiber.Ctx) error {
	codDocente, err := authhelper.GetCodDocente(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var items []dto.AusenciaItem
	err = ctl.DB.Table("asistencias AS ast").
		Select(`ast.id_asistencia, to_char(ast.fecha, 'YYYY-MM-DD') AS fecha,
			m.nombre AS materia, g.nombre AS grupo, b.nombre AS bloque,
			au.nombre AS aula, j.estado AS justificacion`).
		Joins("JOIN horarios_clase hc ON hc.id_horario_clase = ast.id_horario_clase").
		Joins("JOIN asignaciones_docente a ON a.id_asignacion = hc.id_asignacion").
		Joins("JOIN materias_grupo mg ON mg.id_materia_grupo = a.id_materia_grupo").
		Joins("JOIN materias m ON m.id_materia = mg.id_materia").
		Joins("JOIN grupos g ON g.id_grupo = mg.id_grupo").
		Joins("JOIN bloques_horario b ON b.id_bloque_horario = hc.id_bloque_horario").
		Joins("JOIN aulas au ON au.id_aula = hc.id_aula").
		Joins("LEFT JOIN justificaciones j ON j.id_asistencia = ast.id_asistencia").
		Where("ast.cod_docente = ? AND ast.estado = ?", codDocente, model.AsistenciaAusente).
		Order("ast.fecha DESC").
		Scan(&items).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error al obtener ausencias")
	}
	if items == nil {
		items = []dto.AusenciaItem{}
	}
	return helper.Success(c, "Ausencias obtenidas correctamente", items)
}

// Justificar recibe el motivo (multipart) y un documento de respaldo
// opcional para una ausencia del docente. A lo sumo una justificación
// abierta por asistencia.
func (ctl *AsistenciaController) Justificar(c *fiber.Ctx) error {
	codDocente, err := authhelper.GetCodDocente(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	motivo := strings.TrimSpace(c.FormValue("motivo"))
	if len(motivo) < 10 {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"El motivo debe tener al menos 10 caracteres")
	}

	var documento *string
	if archivo, err := c.FormFile("documento"); err == nil && archivo != nil {
		ext := strings.ToLower(filepath.Ext(archivo.Filename))
		switch ext {
		case ".pdf", ".jpg", ".jpeg", ".png":
		default:
			return helper.Error(c, fiber.StatusUnprocessableEntity,
				"Formato de documento no admitido (pdf, jpg, png)")
		}
		nombre := fmt.Sprintf("justificacion_%d_%s%s", id, uuid.NewString()[:8], ext)
		destino := filepath.Join(configs.UploadsDir, nombre)
		if err := c.SaveFile(archivo, destino); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error al guardar el documento")
		}
		documento = &nombre
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var asistencia model.Asistencia
		if err := tx.First(&asistencia, "id_asistencia = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Registro de asistencia no encontrado")
			}
			return err
		}
		if asistencia.CodDocente != codDocente {
			return fiber.NewError(fiber.StatusForbidden, "La ausencia no pertenece al docente")
		}
		if asistencia.Estado != model.AsistenciaAusente {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"Sólo las ausencias pueden justificarse")
		}

		var estados []model.EstadoJustificacion
		if err := tx.Model(&model.Justificacion{}).
			Where("id_asistencia = ?", id).
			Pluck("estado", &estados).Error; err != nil {
			return err
		}
		if !service.PermiteNuevaJustificacion(estados) {
			return fiber.NewError(fiber.StatusConflict,
				"La ausencia ya tiene una justificación en curso")
		}

		return tx.Create(&model.Justificacion{
			IDAsistencia: uint(id),
			Motivo:       motivo,
			Documento:    documento,
			Estado:       model.JustificacionPendiente,
		}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Justificación enviada correctamente", nil)
}
