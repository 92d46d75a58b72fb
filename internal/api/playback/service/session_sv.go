package playbackService

import (
	"context"
	"errors"
	"time"

	"VoicePlay/internal/api/playback"
	"VoicePlay/internal/entity"
	contextPkg "VoicePlay/pkg/context"
	redisPkg "VoicePlay/pkg/redis"
	"VoicePlay/pkg/target"

	"github.com/sirupsen/logrus"
)

// targetCacheTTL bounds how long a classified target may outlive its
// session. Opening a new session always overwrites it.
const targetCacheTTL = 6 * time.Hour

func (s *playbackService) OpenSession(ctx context.Context, userID string, req playback.OpenSessionRequest) (*playback.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !target.IsValidLocator(req.URL) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"url":        req.URL,
		}).Warn("Rejected invalid playback locator")
		return nil, playback.ErrInvalidLocator
	}

	classified := target.Classify(req.URL)

	// A new session invalidates whatever the previous one classified.
	// The SetNX after the delete keeps the guarantee that classification
	// happens once per session even if two opens race: the loser keeps
	// the winner's target instead of recomputing mid-session.
	if err := s.redis.DeleteTarget(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cached playback target")
		return nil, playback.ErrSessionOpenFailed
	}

	if _, err := s.redis.SetTargetNX(ctx, userID, classified, targetCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to cache playback target")
		return nil, playback.ErrSessionOpenFailed
	}

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return nil, playback.ErrSessionOpenFailed
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, playback.ErrSessionOpenFailed
	}
	defer repo.Rollback()

	session := entity.PlaybackSession{
		ID:        sessionID,
		UserID:    userID,
		Target:    classified,
		CreatedAt: time.Now(),
	}

	if err := repo.Sessions.CreateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist playback session")
		return nil, playback.ErrSessionOpenFailed
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit playback session")
		return nil, playback.ErrSessionOpenFailed
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"backend":    classified.Backend,
	}).Info("Playback session opened")

	return &playback.SessionResponse{
		SessionID:   sessionID,
		URL:         classified.Locator,
		Backend:     classified.Backend,
		DirectMedia: classified.DirectMedia,
		Hostname:    target.Hostname(classified.Locator),
	}, nil
}

func (s *playbackService) GetSession(ctx context.Context, userID string) (*playback.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cached, err := s.redis.GetTarget(ctx, userID)
	if err != nil {
		if errors.Is(err, redisPkg.ErrTargetNotFound) {
			return nil, playback.ErrSessionNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read cached playback target")
		return nil, err
	}

	resp := &playback.SessionResponse{
		URL:         cached.Locator,
		Backend:     cached.Backend,
		DirectMedia: cached.DirectMedia,
		Hostname:    target.Hostname(cached.Locator),
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return resp, nil
	}

	// The session row is informational here; the cached target is the
	// source of truth for dispatch, so a database miss is not an error.
	session, err := repo.Sessions.GetLatestSessionByUserID(ctx, userID)
	if err == nil {
		resp.SessionID = session.ID
	}

	return resp, nil
}
