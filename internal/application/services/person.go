package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"party-manager-api/internal/application/ports"
	"party-manager-api/internal/domain/party"
	domain "party-manager-api/internal/domain/person"
	"party-manager-api/internal/domain/sentinel"
	"party-manager-api/internal/infrastructure/mq"
	"party-manager-api/internal/interface/api/rest/dto/person"
)

type PersonService struct {
	tx               ports.TxManager
	personRepository domain.Repository
	partyRepository  party.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

// NewPersonService builds the service. mq and mCounter may be nil, in
// which case events and counters are skipped.
func NewPersonService(
	tx ports.TxManager,
	personRepository domain.Repository,
	partyRepository party.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.PersonService {
	return &PersonService{
		tx:               tx,
		personRepository: personRepository,
		partyRepository:  partyRepository,
		mq:               mq,
		mCounter:         mCounter,
	}
}

func (ps *PersonService) FindPersonByID(ctx context.Context, id domain.ID) (*domain.Person, error) {
	p, err := ps.personRepository.FetchPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (ps *PersonService) FindPeople(ctx context.Context, skip, limit int) (domain.People, error) {
	people, err := ps.personRepository.FetchPeople(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	return people, nil
}

func (ps *PersonService) CreatePerson(ctx context.Context, p domain.Person) (*domain.Person, error) {
	var created *domain.Person
	p.Email = domain.NormalizeEmail(p.Email)

	err := ps.tx.RunInTx(ctx, func(ctx context.Context) error {
		taken, err := ps.personRepository.EmailTaken(ctx, p.Email)
		if err != nil {
			return err
		}
		if taken {
			return sentinel.ErrDuplicateEmail
		}

		pty, err := ps.partyRepository.CreateParty(ctx, party.Party{
			Type:        party.TypePerson,
			DisplayName: domain.DisplayName(p.FirstName, p.LastName),
			Status:      party.StatusActive,
		})
		if err != nil {
			return err
		}

		p.PartyID = pty.ID
		p.IsActive = true
		created, err = ps.personRepository.CreatePerson(ctx, p)
		if err != nil {
			return err
		}
		created.Party = pty

		return nil
	})
	if err != nil {
		return nil, err
	}

	ps.publish(http.MethodPost, created.ID, created)
	ps.inc("person_created_total")

	return created, nil
}

// UpdatePerson applies patch to an active person and keeps the party
// display name in step with the names. nil, nil means not found.
func (ps *PersonService) UpdatePerson(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.Person, error) {
	var updated *domain.Person
	if patch.Email != nil {
		email := domain.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}

	err := ps.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := ps.personRepository.FetchPersonByID(ctx, id)
		if err != nil || current == nil {
			return err
		}
		if patch.IsEmpty() {
			updated = current
			return nil
		}

		if patch.Email != nil {
			taken, err := ps.personRepository.EmailTakenByOther(ctx, *patch.Email, id)
			if err != nil {
				return err
			}
			if taken {
				return sentinel.ErrDuplicateEmail
			}
		}

		current.Apply(patch)
		ok, err := ps.personRepository.UpdatePerson(ctx, *current)
		if err != nil || !ok {
			return err
		}

		if patch.TouchesName() {
			displayName := domain.DisplayName(current.FirstName, current.LastName)
			if err = ps.partyRepository.UpdateDisplayName(ctx, current.PartyID, displayName); err != nil {
				return err
			}
		}

		updated, err = ps.personRepository.FetchPersonByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	if !patch.IsEmpty() {
		ps.publish(http.MethodPatch, updated.ID, updated)
		ps.inc("person_updated_total")
	}

	return updated, nil
}

// DeletePerson soft-deletes the person and archives its party. It returns
// false only when no person with id was ever created. Deleting an inactive
// person again succeeds without an event.
func (ps *PersonService) DeletePerson(ctx context.Context, id domain.ID) (bool, error) {
	var found, deactivated bool

	err := ps.tx.RunInTx(ctx, func(ctx context.Context) error {
		partyID, err := ps.personRepository.FetchPartyID(ctx, id)
		if err != nil || partyID == nil {
			return err
		}

		if deactivated, err = ps.personRepository.DeactivatePerson(ctx, id); err != nil {
			return err
		}
		if err = ps.partyRepository.ArchiveParty(ctx, *partyID); err != nil {
			return err
		}

		found = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if deactivated {
		ps.publish(http.MethodDelete, id, nil)
		ps.inc("person_deleted_total")
	}

	return found, nil
}

func (ps *PersonService) publish(method string, id domain.ID, p *domain.Person) {
	if ps.mq == nil {
		return
	}

	e := mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   method,
		PersonID: id.String(),
	}
	if p != nil {
		payload := person.ToResponsePerson(*p)
		e.Payload = &payload
	}

	ps.mq.GetInputChan() <- e
}

func (ps *PersonService) inc(result string) {
	if ps.mCounter != nil {
		ps.mCounter.WithLabelValues(result).Inc()
	}
}
