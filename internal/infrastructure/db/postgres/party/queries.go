package party

const (
	InsertParty = `
		INSERT INTO parties (id, party_type, display_name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, party_type, display_name, status, created_at, updated_at
	`
	UpdateDisplayNameByID = `
		UPDATE parties
		SET display_name = $1,
		    updated_at = now()
		WHERE id = $2
	`
	UpdateStatusByID = `
		UPDATE parties
		SET status = $1,
		    updated_at = now()
		WHERE id = $2 AND status <> $1
	`
)
