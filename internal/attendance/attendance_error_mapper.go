package attendance

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	atterrors "github.com/3DBotics/attendance/internal/attendance/errors"
)

const openEventIndexName = "idx_open_event_per_employee"

// mapRepositoryError translates constraint violations into domain errors.
// The partial unique index catches an open event the date-scoped service
// check cannot see, such as one left open on a previous day.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == openEventIndexName {
			return atterrors.ErrDuplicateOpenRecord
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, openEventIndexName) {
		return atterrors.ErrDuplicateOpenRecord
	}

	return err
}
