package playbackService

import (
	"context"
	"math"
	"time"

	"VoicePlay/internal/api/playback"
	"VoicePlay/internal/entity"
	contextPkg "VoicePlay/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *playbackService) GetActionHistory(ctx context.Context, userID string, page, limit int) ([]entity.VoiceAction, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, 0, playback.ErrActionQueryFailed
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	actions, total, err := repo.Actions.GetActionsByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get voice actions")
		return nil, 0, playback.ErrActionQueryFailed
	}

	return actions, total, nil
}

func (s *playbackService) GetActionStats(ctx context.Context, userID string) (*playback.ActionStats, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, playback.ErrActionQueryFailed
	}

	actions, err := repo.Actions.GetAllActionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get voice actions for stats")
		return nil, playback.ErrActionQueryFailed
	}

	return buildActionStats(actions, time.Now()), nil
}

// buildActionStats aggregates counters over the user's full history.
// The success rate is a whole percentage, rounded half away from zero.
func buildActionStats(actions []entity.VoiceAction, now time.Time) *playback.ActionStats {
	stats := &playback.ActionStats{Total: len(actions)}

	if len(actions) == 0 {
		return stats
	}

	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	successCount := 0
	for _, action := range actions {
		if !action.CreatedAt.Before(startOfDay) {
			stats.Today++
		}
		if !action.CreatedAt.Before(startOfMonth) {
			stats.ThisMonth++
		}
		if action.Success {
			successCount++
		}
	}

	stats.SuccessRate = int(math.Round(float64(successCount) / float64(len(actions)) * 100))

	return stats
}
