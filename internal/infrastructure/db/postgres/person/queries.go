package person

const (
	SelectPeople = `
		SELECT p.id, p.party_id, p.first_name, p.last_name, p.date_of_birth, p.email, p.phone, p.is_active,
		       pa.id, pa.party_type, pa.display_name, pa.status, pa.created_at, pa.updated_at
		FROM people p
		JOIN parties pa ON pa.id = p.party_id
		WHERE p.is_active
		ORDER BY pa.created_at, p.id
		OFFSET $1 LIMIT $2
	`
	SelectPersonByID = `
		SELECT p.id, p.party_id, p.first_name, p.last_name, p.date_of_birth, p.email, p.phone, p.is_active,
		       pa.id, pa.party_type, pa.display_name, pa.status, pa.created_at, pa.updated_at
		FROM people p
		JOIN parties pa ON pa.id = p.party_id
		WHERE p.id = $1 AND p.is_active
	`
	SelectEmailExists       = `SELECT EXISTS (SELECT 1 FROM people WHERE email = $1)`
	SelectEmailExistsExcept = `SELECT EXISTS (SELECT 1 FROM people WHERE email = $1 AND id <> $2)`
	InsertPerson            = `
		INSERT INTO people (id, party_id, first_name, last_name, date_of_birth, email, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING
		  id, party_id, first_name, last_name, date_of_birth, email, phone, is_active
	`
	UpdatePersonByID = `
		UPDATE people
		SET first_name = $1,
		    last_name = $2,
		    date_of_birth = $3,
		    email = $4,
		    phone = $5
		WHERE id = $6 AND is_active
	`
	SelectPartyIDByID    = `SELECT party_id FROM people WHERE id = $1`
	DeactivatePersonByID = `UPDATE people SET is_active = FALSE WHERE id = $1 AND is_active`
)
