package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"VoicePlay/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrTargetNotFound = errors.New("playback target not cached")

// IRedis caches the per-user playback target classification. The target
// is written once when a session opens (SetTargetNX guards against a
// second classification racing in) and read on every dispatch.
type IRedis interface {
	SetTargetNX(ctx context.Context, userID string, target entity.PlaybackTarget, expiration time.Duration) (bool, error)
	GetTarget(ctx context.Context, userID string) (entity.PlaybackTarget, error)
	DeleteTarget(ctx context.Context, userID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func targetKey(userID string) string {
	return "playback:target:" + userID
}

func (r *redisClient) SetTargetNX(ctx context.Context, userID string, target entity.PlaybackTarget, expiration time.Duration) (bool, error) {
	payload, err := jsoniter.Marshal(target)
	if err != nil {
		return false, err
	}

	set, err := r.client.SetNX(ctx, targetKey(userID), payload, expiration).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching playback target for user %s: %v", userID, err))
		return false, err
	}

	return set, nil
}

func (r *redisClient) GetTarget(ctx context.Context, userID string) (entity.PlaybackTarget, error) {
	val, err := r.client.Get(ctx, targetKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.PlaybackTarget{}, ErrTargetNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading playback target for user %s: %v", userID, err))
		return entity.PlaybackTarget{}, err
	}

	var target entity.PlaybackTarget
	if err := jsoniter.UnmarshalFromString(val, &target); err != nil {
		return entity.PlaybackTarget{}, err
	}

	return target, nil
}

func (r *redisClient) DeleteTarget(ctx context.Context, userID string) error {
	if _, err := r.client.Del(ctx, targetKey(userID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting playback target for user %s: %v", userID, err))
		return err
	}
	return nil
}
