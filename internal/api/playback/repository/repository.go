package playbackRepository

import (
	"VoicePlay/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Actions:  &actionRepository{q: sqlExecutor, log: r.log},
		Sessions: &sessionRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Actions interface {
		CreateAction(ctx context.Context, action entity.VoiceAction) error
		GetActionsByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.VoiceAction, int, error)
		GetAllActionsByUserID(ctx context.Context, userID string) ([]entity.VoiceAction, error)
	}

	Sessions interface {
		CreateSession(ctx context.Context, session entity.PlaybackSession) error
		GetLatestSessionByUserID(ctx context.Context, userID string) (entity.PlaybackSession, error)
	}

	Commit   func() error
	Rollback func() error
}

type actionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type sessionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
