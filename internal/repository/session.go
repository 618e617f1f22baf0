package repository

import (
	"context"
	"database/sql"
	"time"

	"algonest_webclient/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const sessionsTable = "sessions"

type session struct {
	SessionID  uuid.UUID `db:"session_id"`
	AuthToken  string    `db:"auth_token"`
	UserID     string    `db:"user_id"`
	CreatedAt  time.Time `db:"created_at"`
	ExpiresAt  time.Time `db:"expires_at"`
	LastSeenAt time.Time `db:"last_seen_at"`
}

func (s *session) toModel() *model.Session {
	return &model.Session{
		ID:         s.SessionID,
		AuthToken:  s.AuthToken,
		UserID:     s.UserID,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
		LastSeenAt: s.LastSeenAt,
	}
}

func (r *Repository) CreateSession(ctx context.Context, s *model.Session) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		// A user re-authenticating replaces any session still bound to the same token.
		deleteQuery, deleteArgs, err := squirrel.
			Delete(sessionsTable).
			Where(squirrel.Eq{"auth_token": s.AuthToken}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "failed to build session cleanup query")
		}

		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return errors.Wrap(err, "failed to clean up sessions")
		}

		query, args, err := squirrel.
			Insert(sessionsTable).
			SetMap(map[string]interface{}{
				"session_id":   s.ID,
				"auth_token":   s.AuthToken,
				"user_id":      s.UserID,
				"created_at":   s.CreatedAt,
				"expires_at":   s.ExpiresAt,
				"last_seen_at": s.LastSeenAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "failed to build session insert query")
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "failed to insert session")
		}

		return nil
	})
}

func (r *Repository) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	query, args, err := squirrel.
		Select("session_id", "auth_token", "user_id", "created_at", "expires_at", "last_seen_at").
		From(sessionsTable).
		Where(squirrel.Eq{"session_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s session
	err = r.db.GetContext(ctx, &s, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.toModel(), nil
}

func (r *Repository) TouchSession(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	query, args, err := squirrel.
		Update(sessionsTable).
		Set("last_seen_at", seenAt).
		Where(squirrel.Eq{"session_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to touch session")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	query, args, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"session_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	return res.RowsAffected()
}
