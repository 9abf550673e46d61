package hruser

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	hrusererrors "github.com/PADMANABAN5/hrms/internal/hruser/errors"
)

func mapDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return hrusererrors.ErrEmailAlreadyUsed
	}
	return err
}
