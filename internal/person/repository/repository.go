package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/peopleregistry/backend/internal/common/constants"
	"github.com/peopleregistry/backend/internal/common/db"
	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
	"github.com/peopleregistry/backend/internal/observability/metrics"
	"github.com/peopleregistry/backend/internal/person/codec"
	"github.com/peopleregistry/backend/internal/person/domain"
)

type Repository interface {
	Create(ctx context.Context, person domain.Person) (domain.Person, error)
	FindByID(ctx context.Context, id string) (domain.Person, error)
	FindBySearchTerm(ctx context.Context, term string) ([]domain.Person, error)
	Count(ctx context.Context) (int64, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const uniqueViolationCode = "23505"

func (r *PgRepository) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	start := time.Now()

	stackColumn, err := codec.EncodeStackColumn(person)
	if err != nil {
		return domain.Person{}, commonerrors.ErrInternalError.WithCause(err)
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO users (username, name, birth_date, stack, search)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, username, name, birth_date, stack`,
		person.Username.String(),
		person.Name.String(),
		person.Birthdate,
		stackColumn,
		buildSearchText(person),
	)

	var (
		id        string
		username  string
		name      string
		birthDate string
		stack     *string
	)
	if err := row.Scan(&id, &username, &name, &birthDate, &stack); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			db.MeasureQueryDuration("create person", start)
			return domain.Person{}, commonerrors.ErrUsernameTaken
		}
		return domain.Person{}, db.HandleExecError(err, "create person", start)
	}
	db.MeasureQueryDuration("create person", start)

	return codec.DecodeRow(id, username, name, birthDate, stack)
}

func (r *PgRepository) FindByID(ctx context.Context, id string) (domain.Person, error) {
	start := time.Now()

	row := r.pool.QueryRow(
		ctx,
		`SELECT id, username, name, birth_date, stack FROM users WHERE id = $1`,
		id,
	)

	var (
		rowID     string
		username  string
		name      string
		birthDate string
		stack     *string
	)
	err := row.Scan(&rowID, &username, &name, &birthDate, &stack)
	if err := db.HandleQueryError(err, commonerrors.ErrPersonNotFound, "find person by id", start); err != nil {
		return domain.Person{}, err
	}

	return codec.DecodeRow(rowID, username, name, birthDate, stack)
}

func (r *PgRepository) FindBySearchTerm(ctx context.Context, term string) ([]domain.Person, error) {
	start := time.Now()

	pattern := "%" + term + "%"
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, username, name, birth_date, stack
		 FROM users
		 WHERE search ILIKE $1
		 LIMIT $2`,
		pattern,
		constants.SearchResultsLimit,
	)
	if err := db.HandleExecError(err, "search people", start); err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		var (
			id        string
			username  string
			name      string
			birthDate string
			stack     *string
		)
		if err := rows.Scan(&id, &username, &name, &birthDate, &stack); err != nil {
			return nil, db.HandleExecError(err, "search people", start)
		}

		person, err := codec.DecodeRow(id, username, name, birthDate, stack)
		if err != nil {
			// A row written outside this service can violate the bounds;
			// such rows are dropped, never surfaced.
			metrics.PeopleDroppedRowsTotal.Inc()
			continue
		}
		people = append(people, person)
	}

	if rows.Err() != nil {
		return nil, db.HandleExecError(rows.Err(), "search people", start)
	}

	return people, nil
}

func (r *PgRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count)
	if err := db.HandleExecError(err, "count people", start); err != nil {
		return 0, err
	}

	return count, nil
}

// buildSearchText derives the substring-search column: username, name and
// the comma-joined stack tags.
func buildSearchText(person domain.Person) string {
	parts := []string{person.Username.String(), person.Name.String()}
	if tags := person.StackStrings(); len(tags) > 0 {
		parts = append(parts, strings.Join(tags, ","))
	}
	return strings.Join(parts, " ")
}
