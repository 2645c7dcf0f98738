package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// BloquearGestion toma el lock consultivo exclusivo de la gestión por lo
// que dure la transacción. Toda escritura de calendario (manual, motor,
// publicación) serializa aquí su check-and-commit; los lectores siguen
// concurrentes bajo MVCC. La espera está acotada por lock_timeout y el
// vencimiento sube como Busy reintentable, nunca espera indefinida.
func BloquearGestion(tx *gorm.DB, idGestion uint) error {
	if err := tx.Exec("SET LOCAL lock_timeout = '3s'").Error; err != nil {
		return err
	}
	return tx.Exec(
		"SELECT pg_advisory_xact_lock(hashtext('gestion:' || ?::text))",
		idGestion,
	).Error
}

// EsBloqueoOcupado reconoce el vencimiento de lock_timeout (SQLSTATE 55P03).
func EsBloqueoOcupado(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "55P03"
}
