package service

import (
	"time"

	"gorm.io/gorm"
)

// LimiteBarrido calcula la hora de corte (ahora − gracia) para el barrido.
// Devuelve ok=false cuando el corte cae en el día anterior (recién pasada
// la medianoche): en ese caso ningún bloque de hoy pudo haber vencido y el
// barrido debe omitirse en vez de comparar contra una hora envuelta.
func LimiteBarrido(ahora time.Time, graciaMin int) (string, bool) {
	corte := ahora.Add(-time.Duration(graciaMin) * time.Minute)
	if corte.Day() != ahora.Day() || corte.Month() != ahora.Month() || corte.Year() != ahora.Year() {
		return "", false
	}
	return corte.Format("15:04:05"), true
}

// BarrerAusencias infiere los AUSENTE del día: por cada sesión ACTIVO de
// la gestión activa y publicada cuyo bloque ya venció (fin + gracia) y que
// no tiene registro para la fecha, inserta una fila AUSENTE. Idempotente:
// el índice único (horario, fecha) protege contra barridos concurrentes.
func BarrerAusencias(db *gorm.DB, ahora time.Time, graciaMin int) (int64, error) {
	limite, ok := LimiteBarrido(ahora, graciaMin)
	if !ok {
		return 0, nil
	}

	res := db.Exec(`
		INSERT INTO asistencias (id_horario_clase, cod_docente, fecha, estado, folio)
		SELECT hc.id_horario_clase, a.cod_docente, ?::date, 'AUSENTE', ''
		FROM horarios_clase hc
		JOIN asignaciones_docente a ON a.id_asignacion = hc.id_asignacion
		JOIN bloques_horario b      ON b.id_bloque_horario = hc.id_bloque_horario
		JOIN dias di                ON di.id_dia = hc.id_dia
		JOIN gestiones ge           ON ge.id_gestion = hc.id_gestion
		WHERE hc.estado = 'ACTIVO'
		  AND ge.activo = TRUE
		  AND ge.estado_publicacion = 'PUBLICADA'
		  AND ?::date BETWEEN ge.fecha_inicio AND ge.fecha_fin
		  AND di.orden = ?
		  AND b.hr_fin < ?::time
		  AND NOT EXISTS (
			SELECT 1 FROM asistencias ast
			WHERE ast.id_horario_clase = hc.id_horario_clase
			  AND ast.fecha = ?::date
		  )
		ON CONFLICT (id_horario_clase, fecha) DO NOTHING`,
		ahora.Format("2006-01-02"), ahora.Format("2006-01-02"),
		OrdenDeFecha(ahora), limite, ahora.Format("2006-01-02"))
	return res.RowsAffected, res.Error
}
