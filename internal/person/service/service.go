package service

import (
	"context"
	"errors"

	"github.com/peopleregistry/backend/internal/common/db"
	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
	"github.com/peopleregistry/backend/internal/common/logger"
	"github.com/peopleregistry/backend/internal/common/resilience"
	"github.com/peopleregistry/backend/internal/observability/metrics"
	"github.com/peopleregistry/backend/internal/person/codec"
	"github.com/peopleregistry/backend/internal/person/domain"
	"github.com/peopleregistry/backend/internal/person/repository"
)

type Service interface {
	Create(ctx context.Context, body []byte) (codec.PersonDocument, error)
	GetByID(ctx context.Context, id string) (codec.PersonDocument, error)
	Search(ctx context.Context, term string) ([]codec.PersonDocument, error)
	Count(ctx context.Context) (int64, error)
}

type PersonService struct {
	repo    repository.Repository
	breaker *resilience.CircuitBreaker
	opts    codec.Options
	log     *logger.Logger
}

func NewPersonService(
	repo repository.Repository,
	breaker *resilience.CircuitBreaker,
	opts codec.Options,
	log *logger.Logger,
) *PersonService {
	return &PersonService{
		repo:    repo,
		breaker: breaker,
		opts:    opts,
		log:     log,
	}
}

func (s *PersonService) Create(ctx context.Context, body []byte) (codec.PersonDocument, error) {
	person, err := codec.DecodePerson(body, s.opts)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "person_create_rejected",
		}).Warnf("create person rejected: %v", err)
		metrics.PeopleCreateRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return codec.PersonDocument{}, err
	}

	var created domain.Person
	err = s.breaker.Call(ctx, func(ctx context.Context) error {
		var callErr error
		created, callErr = s.repo.Create(ctx, person)
		return callErr
	})
	if err != nil {
		if errors.Is(err, commonerrors.ErrUsernameTaken) {
			s.log.WithFields(ctx, logger.Fields{
				"username": person.Username.String(),
				"action":   "person_create_duplicate",
			}).Warn("create person failed: username already taken")
			metrics.PeopleCreateRejectedTotal.WithLabelValues("duplicate_username").Inc()
			return codec.PersonDocument{}, err
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": person.Username.String(),
			"action":   "person_create_failed",
		}).Errorf("create person failed: %v", err)
		return codec.PersonDocument{}, err
	}

	metrics.PeopleCreatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"person_id": created.ID,
		"username":  created.Username.String(),
		"action":    "person_created",
	}).Info("person created")

	return codec.EncodePerson(created), nil
}

func (s *PersonService) GetByID(ctx context.Context, id string) (codec.PersonDocument, error) {
	var person domain.Person
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		return db.RetryWithBackoff(ctx, s.log, db.DefaultRetryConfig, func() error {
			var callErr error
			person, callErr = s.repo.FindByID(ctx, id)
			return callErr
		})
	})
	if err != nil {
		if errors.Is(err, commonerrors.ErrPersonNotFound) {
			metrics.PeopleLookupsTotal.WithLabelValues("not_found").Inc()
			return codec.PersonDocument{}, err
		}
		metrics.PeopleLookupsTotal.WithLabelValues("error").Inc()
		s.log.WithFields(ctx, logger.Fields{
			"person_id": id,
			"action":    "person_lookup_failed",
		}).Errorf("find person failed: %v", err)
		return codec.PersonDocument{}, err
	}

	metrics.PeopleLookupsTotal.WithLabelValues("found").Inc()
	return codec.EncodePerson(person), nil
}

func (s *PersonService) Search(ctx context.Context, term string) ([]codec.PersonDocument, error) {
	if term == "" {
		return nil, commonerrors.ErrEmptySearchTerm
	}

	var people []domain.Person
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		return db.RetryWithBackoff(ctx, s.log, db.DefaultRetryConfig, func() error {
			var callErr error
			people, callErr = s.repo.FindBySearchTerm(ctx, term)
			return callErr
		})
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"term":   term,
			"action": "people_search_failed",
		}).Errorf("search people failed: %v", err)
		return nil, err
	}

	metrics.PeopleSearchesTotal.Inc()
	metrics.PeopleSearchResults.Observe(float64(len(people)))

	docs := make([]codec.PersonDocument, 0, len(people))
	for _, p := range people {
		docs = append(docs, codec.EncodePerson(p))
	}
	return docs, nil
}

func (s *PersonService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		return db.RetryWithBackoff(ctx, s.log, db.DefaultRetryConfig, func() error {
			var callErr error
			count, callErr = s.repo.Count(ctx)
			return callErr
		})
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "people_count_failed",
		}).Errorf("count people failed: %v", err)
		return 0, err
	}

	metrics.PeopleCountRequestsTotal.Inc()
	return count, nil
}

func rejectionReason(err error) string {
	if de, ok := commonerrors.AsDomainError(err); ok {
		return de.Code()
	}
	return "unknown"
}
