package pg

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func hasPqCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func isUniqueViolation(err error) bool {
	return hasPqCode(err, uniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasPqCode(err, foreignKeyViolation)
}
