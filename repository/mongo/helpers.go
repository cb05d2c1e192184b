package mongo

import (
	"errors"

	"github.com/jobtasks/backend/domain"
)

var errUnexpectedID = errors.New("store returned a non-ObjectID inserted id")

func wrapStoreErr(message string, err error) error {
	return domain.WrapError(domain.ErrCodeStoreFailure, message, err)
}
