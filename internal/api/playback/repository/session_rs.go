package playbackRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"VoicePlay/internal/api/playback"
	"VoicePlay/internal/entity"
	contextPkg "VoicePlay/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PlaybackSessionDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Locator     sql.NullString `db:"locator"`
	Backend     sql.NullString `db:"backend"`
	DirectMedia sql.NullBool   `db:"direct_media"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *sessionRepository) CreateSession(ctx context.Context, session entity.PlaybackSession) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":           session.ID,
		"user_id":      session.UserID,
		"locator":      session.Target.Locator,
		"backend":      string(session.Target.Backend),
		"direct_media": session.Target.DirectMedia,
		"created_at":   session.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePlaybackSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSession")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating playback session")
		return err
	}

	return nil
}

func (r *sessionRepository) GetLatestSessionByUserID(ctx context.Context, userID string) (entity.PlaybackSession, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var sessionDB PlaybackSessionDB

	query, args, err := sqlx.Named(queryGetLatestPlaybackSessionByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestSessionByUserID named query preparation err")
		return entity.PlaybackSession{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&sessionDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PlaybackSession{}, playback.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestSessionByUserID execution err")
		return entity.PlaybackSession{}, err
	}

	return entity.PlaybackSession{
		ID:     sessionDB.ID.String,
		UserID: sessionDB.UserID.String,
		Target: entity.PlaybackTarget{
			Locator:     sessionDB.Locator.String,
			Backend:     entity.BackendKind(sessionDB.Backend.String),
			DirectMedia: sessionDB.DirectMedia.Bool,
		},
		CreatedAt: sessionDB.CreatedAt,
	}, nil
}
