// Command seed loads a fixed set of sample people through the person
// service. People whose email already exists are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"party-manager-api/config"
	"party-manager-api/internal/application/ports"
	"party-manager-api/internal/application/services"
	"party-manager-api/internal/domain/person"
	"party-manager-api/internal/domain/sentinel"
	"party-manager-api/internal/infrastructure/db/postgres"
	partyDB "party-manager-api/internal/infrastructure/db/postgres/party"
	personDB "party-manager-api/internal/infrastructure/db/postgres/person"
)

type sample struct {
	first, last, dob, phone string
}

var samples = []sample{
	{"John", "Doe", "1990-05-15", "+1-555-0101"},
	{"Jane", "Smith", "1985-08-22", "+1-555-0102"},
	{"Michael", "Johnson", "1992-03-10", "+1-555-0103"},
	{"Emily", "Williams", "1988-11-30", "+1-555-0104"},
	{"David", "Brown", "1995-07-04", "+1-555-0105"},
	{"Sarah", "Davis", "1991-12-18", "+1-555-0106"},
	{"Robert", "Miller", "1987-02-25", "+1-555-0107"},
	{"Lisa", "Wilson", "1993-09-12", "+1-555-0108"},
	{"James", "Moore", "1989-06-08", "+1-555-0109"},
	{"Patricia", "Taylor", "1994-01-20", "+1-555-0110"},
}

type result struct {
	created, skipped, failed int
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	if err = godotenv.Load(".env"); err != nil {
		logger.Info("no .env file loaded, using process environment", zap.Error(err))
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	pool, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err = postgres.Migrate(ctx, logger, pool); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	svc := services.NewPersonService(
		postgres.NewTxManager(pool),
		personDB.NewRepository(pool),
		partyDB.NewRepository(pool),
		nil,
		nil,
	)

	res := seed(ctx, svc, logger)
	fmt.Fprintf(os.Stdout, "seed finished: created=%d skipped=%d failed=%d\n", res.created, res.skipped, res.failed)
	if res.failed > 0 {
		os.Exit(1)
	}
}

func seed(ctx context.Context, svc ports.PersonService, logger *zap.Logger) result {
	var res result
	for _, s := range samples {
		p, err := s.person()
		if err != nil {
			logger.Error("bad sample", zap.String("first_name", s.first), zap.Error(err))
			res.failed++
			continue
		}

		created, err := svc.CreatePerson(ctx, p)
		switch {
		case errors.Is(err, sentinel.ErrDuplicateEmail), errors.Is(err, sentinel.ErrIntegrityViolation):
			logger.Info("person already exists, skipped", zap.String("email", p.Email))
			res.skipped++
		case err != nil:
			logger.Error("create person failed", zap.String("email", p.Email), zap.Error(err))
			res.failed++
		default:
			logger.Info("person created", zap.String("id", created.ID.String()), zap.String("email", created.Email))
			res.created++
		}
	}

	return res
}

func (s sample) person() (person.Person, error) {
	dob, err := time.Parse("2006-01-02", s.dob)
	if err != nil {
		return person.Person{}, err
	}
	phone := s.phone

	return person.Person{
		FirstName:   s.first,
		LastName:    s.last,
		DateOfBirth: &dob,
		Email:       strings.ToLower(s.first + "." + s.last + "@example.com"),
		Phone:       &phone,
	}, nil
}
