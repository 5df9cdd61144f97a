package validator

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"party-manager-api/internal/interface/api/rest/dto/apierror"
	"party-manager-api/internal/interface/api/rest/dto/person"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
	maxLimit     = 1000
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidatePaging parses skip (>= 0, default 0) and limit (1..1000, default 100).
func ValidatePaging(skip, limit string) (int, int, []apierror.Detail) {
	var errs []apierror.Detail

	s := defaultSkip
	if skip != "" {
		v, err := strconv.Atoi(skip)
		switch {
		case err != nil:
			errs = append(errs, detail("skip", "skip must be an integer", apierror.CodeInvalidFormat))
		case v < 0:
			errs = append(errs, detail("skip", "skip must be greater than or equal to 0", apierror.CodeOutOfRange))
		default:
			s = v
		}
	}

	l := defaultLimit
	if limit != "" {
		v, err := strconv.Atoi(limit)
		switch {
		case err != nil:
			errs = append(errs, detail("limit", "limit must be an integer", apierror.CodeInvalidFormat))
		case v < 1 || v > maxLimit:
			errs = append(errs, detail("limit", "limit must be between 1 and 1000", apierror.CodeOutOfRange))
		default:
			l = v
		}
	}

	return s, l, errs
}

func ValidateCreate(r person.CreateRequest) []apierror.Detail {
	var errs []apierror.Detail

	errs = appendName(errs, "first_name", r.FirstName)
	errs = appendName(errs, "last_name", r.LastName)

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, detail("email", "email is required", apierror.CodeRequired))
	} else if !isEmail(email) {
		errs = append(errs, detail("email", "invalid email format", apierror.CodeInvalidFormat))
	}

	errs = appendDate(errs, r.DateOfBirth)

	return errs
}

// ValidateUpdate checks only the provided fields. An empty request is valid.
func ValidateUpdate(r person.UpdateRequest) []apierror.Detail {
	var errs []apierror.Detail

	if r.FirstName != nil {
		errs = appendName(errs, "first_name", *r.FirstName)
	}
	if r.LastName != nil {
		errs = appendName(errs, "last_name", *r.LastName)
	}
	if r.Email != nil && !isEmail(strings.TrimSpace(*r.Email)) {
		errs = append(errs, detail("email", "invalid email format", apierror.CodeInvalidFormat))
	}

	errs = appendDate(errs, r.DateOfBirth)

	return errs
}

func appendName(errs []apierror.Detail, field, name string) []apierror.Detail {
	switch {
	case name == "":
		return append(errs, detail(field, field+" is required", apierror.CodeRequired))
	case strings.TrimSpace(name) == "":
		return append(errs, detail(field, "Name cannot be empty", apierror.CodeEmpty))
	}
	return errs
}

func appendDate(errs []apierror.Detail, dob *string) []apierror.Detail {
	if dob == nil {
		return errs
	}
	if _, err := time.Parse(person.DateLayout, strings.TrimSpace(*dob)); err != nil {
		return append(errs, detail("date_of_birth", "must be YYYY-MM-DD", apierror.CodeInvalidFormat))
	}
	return errs
}

// isEmail accepts a bare address only, not "Name <addr>" forms.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}

func detail(field, message, code string) apierror.Detail {
	return apierror.Detail{Field: field, Message: message, Code: code}
}
