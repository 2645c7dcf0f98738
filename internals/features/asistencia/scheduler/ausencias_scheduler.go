package scheduler

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sigeho_backend/internals/configs"
	"sigeho_backend/internals/features/asistencia/service"
)

// StartBarridoAusencias lanza el barrido periódico que infiere los
// AUSENTE: sesiones publicadas cuyo bloque ya venció sin marcado.
func StartBarridoAusencias(db *gorm.DB, log *zap.Logger) {
	go func() {
		intervalo := time.Duration(configs.BarridoAusenciasMin) * time.Minute

		for {
			marcadas, err := service.BarrerAusencias(db, time.Now(), configs.AsistenciaGraciaMin)
			if err != nil {
				log.Error("barrido de ausencias falló", zap.Error(err))
			} else if marcadas > 0 {
				log.Info("barrido de ausencias", zap.Int64("marcadas", marcadas))
			}

			time.Sleep(intervalo)
		}
	}()
}
