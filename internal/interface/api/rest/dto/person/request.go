package person

type (
	CreateRequest struct {
		FirstName   string  `json:"first_name"`
		LastName    string  `json:"last_name"`
		DateOfBirth *string `json:"date_of_birth"`
		Email       string  `json:"email"`
		Phone       *string `json:"phone"`
	}
	// UpdateRequest carries a partial update. It has no party_id field:
	// a person never moves to another party.
	UpdateRequest struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		DateOfBirth *string `json:"date_of_birth"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
	}
)
