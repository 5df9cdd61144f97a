package person

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"party-manager-api/internal/domain/person"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date_of_birth format, want YYYY-MM-DD")

func ToResponsePerson(pDomain person.Person) Person {
	var p = Person{
		ID:        pDomain.ID,
		FirstName: pDomain.FirstName,
		LastName:  pDomain.LastName,
		Email:     pDomain.Email,
		Phone:     pDomain.Phone,
		IsActive:  pDomain.IsActive,
	}
	if pDomain.DateOfBirth != nil {
		d := pDomain.DateOfBirth.Format(DateLayout)
		p.DateOfBirth = &d
	}
	if pDomain.Party != nil {
		p.Party = Party{
			ID:          pDomain.Party.ID,
			PartyType:   string(pDomain.Party.Type),
			DisplayName: pDomain.Party.DisplayName,
			Status:      string(pDomain.Party.Status),
		}
	}

	return p
}

func ToResponsePeople(psDomain person.People) People {
	ps := make(People, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponsePerson(*p)
	}

	return ps
}

func ToDomainPerson(pRequest CreateRequest) (person.Person, error) {
	dob, err := parseDate(pRequest.DateOfBirth)
	if err != nil {
		return person.Person{}, err
	}

	var p = person.Person{
		FirstName:   NormalizeName(pRequest.FirstName),
		LastName:    NormalizeName(pRequest.LastName),
		DateOfBirth: dob,
		Email:       NormalizeEmail(pRequest.Email),
		Phone:       pRequest.Phone,
	}

	return p, nil
}

func ToDomainPatch(pRequest UpdateRequest) (person.Patch, error) {
	dob, err := parseDate(pRequest.DateOfBirth)
	if err != nil {
		return person.Patch{}, err
	}

	var patch = person.Patch{
		DateOfBirth: dob,
		Phone:       pRequest.Phone,
	}
	if pRequest.FirstName != nil {
		n := NormalizeName(*pRequest.FirstName)
		patch.FirstName = &n
	}
	if pRequest.LastName != nil {
		n := NormalizeName(*pRequest.LastName)
		patch.LastName = &n
	}
	if pRequest.Email != nil {
		e := NormalizeEmail(*pRequest.Email)
		patch.Email = &e
	}

	return patch, nil
}

// NormalizeName trims and NFC-composes a name so that display names built
// from differently encoded input compare equal.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func NormalizeEmail(s string) string {
	return person.NormalizeEmail(s)
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &d, nil
}
