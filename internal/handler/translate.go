package handler

import (
	"errors"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

var validationMessages = map[string]string{
	domain.EntityRegisterUser + "." + internal_errors.NotContainNeededProperty:      "cannot create a new user because a required property is missing",
	domain.EntityRegisterUser + "." + internal_errors.NotMeetDataTypeSpecification:  "cannot create a new user because a property has the wrong data type",
	domain.EntityRegisterUser + "." + internal_errors.UsernameLimitChar:             "cannot create a new user because the username is longer than 50 characters",
	domain.EntityRegisterUser + "." + internal_errors.UsernameContainRestrictedChar: "cannot create a new user because the username contains restricted characters",

	domain.EntityNewThread + "." + internal_errors.NotContainNeededProperty:     "cannot create a new thread because a required property is missing",
	domain.EntityNewThread + "." + internal_errors.NotMeetDataTypeSpecification: "cannot create a new thread because a property has the wrong data type",

	domain.EntityNewComment + "." + internal_errors.NotContainNeededProperty:     "cannot create a new comment because a required property is missing",
	domain.EntityNewComment + "." + internal_errors.NotMeetDataTypeSpecification: "cannot create a new comment because a property has the wrong data type",

	domain.EntityDeleteComment + "." + internal_errors.NotContainNeededProperty:     "cannot delete the comment because a required property is missing",
	domain.EntityDeleteComment + "." + internal_errors.NotMeetDataTypeSpecification: "cannot delete the comment because a property has the wrong data type",
}

// translate turns known validation errors into client errors with a readable message.
// Everything else is returned unchanged.
func translate(err error) error {
	var validation *internal_errors.ValidationError
	if !errors.As(err, &validation) {
		return err
	}
	if msg, ok := validationMessages[validation.Error()]; ok {
		return internal_errors.Invariant(msg)
	}
	return err
}
