package person

import (
	domainParty "party-manager-api/internal/domain/party"
	domain "party-manager-api/internal/domain/person"
)

func fromDBModel(model *Person) *domain.Person {
	var p = &domain.Person{
		ID:          model.ID,
		PartyID:     model.PartyID,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		DateOfBirth: model.DateOfBirth,
		Email:       model.Email,
		Phone:       model.Phone,
		IsActive:    model.IsActive,
	}
	if model.Party != nil {
		p.Party = &domainParty.Party{
			ID:          model.Party.ID,
			Type:        domainParty.Type(model.Party.PartyType),
			DisplayName: model.Party.DisplayName,
			Status:      domainParty.Status(model.Party.Status),
			CreatedAt:   model.Party.CreatedAt,
			UpdatedAt:   model.Party.UpdatedAt,
		}
	}

	return p
}

func fromDBModels(models *People) domain.People {
	ps := make(domain.People, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
