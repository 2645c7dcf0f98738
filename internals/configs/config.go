package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Ventana de gracia (minutos) antes/después del bloque para registrar asistencia
	AsistenciaGraciaMin int

	// Intervalo (minutos) del barrido de ausencias
	BarridoAusenciasMin int

	// Directorio donde se guardan los documentos de justificación
	UploadsDir string
)

// LoadEnv carga .env (si existe) y resuelve la configuración del servicio.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no se encontró .env, se usan variables del sistema")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("JWT_SECRET no está definido; los endpoints autenticados fallarán")
	}

	AsistenciaGraciaMin = GetEnvInt("ASISTENCIA_GRACIA_MIN", 15)
	BarridoAusenciasMin = GetEnvInt("BARRIDO_AUSENCIAS_MIN", 10)

	UploadsDir = GetEnv("UPLOADS_DIR")
	if UploadsDir == "" {
		UploadsDir = "./uploads"
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
