package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"party-manager-api/internal/interface/api/rest/dto/apierror"
	"party-manager-api/internal/interface/api/rest/dto/person"
)

func strPtr(s string) *string { return &s }

func fields(errs []apierror.Detail) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Code
	}
	return out
}

func TestValidatePaging(t *testing.T) {
	tests := []struct {
		name      string
		skip      string
		limit     string
		wantSkip  int
		wantLimit int
		wantErrs  map[string]string
	}{
		{name: "defaults", wantSkip: 0, wantLimit: 100},
		{name: "explicit", skip: "20", limit: "1000", wantSkip: 20, wantLimit: 1000},
		{name: "negative skip", skip: "-1", wantLimit: 100, wantErrs: map[string]string{"skip": apierror.CodeOutOfRange}},
		{name: "zero limit", limit: "0", wantErrs: map[string]string{"limit": apierror.CodeOutOfRange}},
		{name: "limit too big", limit: "1001", wantErrs: map[string]string{"limit": apierror.CodeOutOfRange}},
		{
			name:     "not numbers",
			skip:     "a",
			limit:    "b",
			wantErrs: map[string]string{"skip": apierror.CodeInvalidFormat, "limit": apierror.CodeInvalidFormat},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, l, errs := ValidatePaging(tt.skip, tt.limit)
			if tt.wantErrs != nil {
				assert.Equal(t, tt.wantErrs, fields(errs))
				return
			}
			require.Empty(t, errs)
			assert.Equal(t, tt.wantSkip, s)
			assert.Equal(t, tt.wantLimit, l)
		})
	}
}

func TestValidateCreate(t *testing.T) {
	valid := person.CreateRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		DateOfBirth: strPtr("1990-05-15"),
		Phone:       strPtr("+1-555-0101"),
	}

	tests := []struct {
		name     string
		mutate   func(r *person.CreateRequest)
		wantErrs map[string]string
	}{
		{name: "valid", mutate: func(r *person.CreateRequest) {}},
		{name: "optional fields absent", mutate: func(r *person.CreateRequest) { r.DateOfBirth, r.Phone = nil, nil }},
		{
			name:     "missing names",
			mutate:   func(r *person.CreateRequest) { r.FirstName, r.LastName = "", "" },
			wantErrs: map[string]string{"first_name": apierror.CodeRequired, "last_name": apierror.CodeRequired},
		},
		{
			name:     "blank name",
			mutate:   func(r *person.CreateRequest) { r.FirstName = "   " },
			wantErrs: map[string]string{"first_name": apierror.CodeEmpty},
		},
		{
			name:     "missing email",
			mutate:   func(r *person.CreateRequest) { r.Email = "" },
			wantErrs: map[string]string{"email": apierror.CodeRequired},
		},
		{
			name:     "invalid email",
			mutate:   func(r *person.CreateRequest) { r.Email = "not-an-email" },
			wantErrs: map[string]string{"email": apierror.CodeInvalidFormat},
		},
		{
			name:     "display form email",
			mutate:   func(r *person.CreateRequest) { r.Email = "John <john@example.com>" },
			wantErrs: map[string]string{"email": apierror.CodeInvalidFormat},
		},
		{
			name:     "bad date",
			mutate:   func(r *person.CreateRequest) { r.DateOfBirth = strPtr("15/05/1990") },
			wantErrs: map[string]string{"date_of_birth": apierror.CodeInvalidFormat},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			errs := ValidateCreate(r)
			if tt.wantErrs == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantErrs, fields(errs))
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	assert.Empty(t, ValidateUpdate(person.UpdateRequest{}))
	assert.Empty(t, ValidateUpdate(person.UpdateRequest{FirstName: strPtr("Johnny"), Email: strPtr("j@example.com")}))

	errs := ValidateUpdate(person.UpdateRequest{
		FirstName:   strPtr(" "),
		LastName:    strPtr(""),
		Email:       strPtr("nope"),
		DateOfBirth: strPtr("1990-13-40"),
	})
	assert.Equal(t, map[string]string{
		"first_name":    apierror.CodeEmpty,
		"last_name":     apierror.CodeRequired,
		"email":         apierror.CodeInvalidFormat,
		"date_of_birth": apierror.CodeInvalidFormat,
	}, fields(errs))
}

func TestIsUUID(t *testing.T) {
	ok, _ := IsUUID("not-a-uuid")
	assert.False(t, ok)

	ok, id := IsUUID("8f2b3c1e-4d5a-4b6c-9d7e-0f1a2b3c4d5e")
	assert.True(t, ok)
	assert.Equal(t, "8f2b3c1e-4d5a-4b6c-9d7e-0f1a2b3c4d5e", id.String())
}
