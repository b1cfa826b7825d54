package pgsql

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_records_app/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const selectUserQuery = `SELECT user_id, username, password_hash, created_at FROM users `

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	_, err := r.exec(ctx, "save user", `
		INSERT INTO users (user_id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4);`,
		m.UserID, m.Username, m.PasswordHash, m.CreatedAt,
	)
	return err
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	m, err := queryOne[models.User](ctx, &r.BaseRepository, "find user by id", selectUserQuery+`WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, err
	}
	user := toDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m, err := queryOne[models.User](ctx, &r.BaseRepository, "find user by username", selectUserQuery+`WHERE username = $1;`, username)
	if err != nil {
		return nil, err
	}
	user := toDomainUser(*m)
	return &user, nil
}
