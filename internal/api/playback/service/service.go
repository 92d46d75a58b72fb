package playbackService

import (
	"context"
	"sync"
	"time"

	"VoicePlay/internal/api/playback"
	playbackRepository "VoicePlay/internal/api/playback/repository"
	"VoicePlay/internal/entity"
	"VoicePlay/pkg/inject"
	"VoicePlay/pkg/lexicon"
	playerPkg "VoicePlay/pkg/player"
	redisPkg "VoicePlay/pkg/redis"
	surfacePkg "VoicePlay/pkg/surface"
	"VoicePlay/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IPlaybackService interface {
	OpenSession(ctx context.Context, userID string, req playback.OpenSessionRequest) (*playback.SessionResponse, error)
	GetSession(ctx context.Context, userID string) (*playback.SessionResponse, error)

	DispatchUtterance(ctx context.Context, userID string, req playback.UtteranceRequest) (*playback.DispatchResponse, error)

	GetActionHistory(ctx context.Context, userID string, page, limit int) ([]entity.VoiceAction, int, error)
	GetActionStats(ctx context.Context, userID string) (*playback.ActionStats, error)
	LastAction(userID string) *playback.LastAction

	TestLexicon(req playback.LexiconTestRequest) *playback.LexiconTestResponse

	HandleReport(report entity.ExecutionReport)
}

// pendingInjection ties a correlation token to the dispatch that emitted
// it, so the out-of-band execution report can be attributed to a user
// and command when it comes back.
type pendingInjection struct {
	userID  string
	command entity.Command
	locator string
	issued  time.Time
}

type playbackService struct {
	log       *logrus.Logger
	repo      playbackRepository.Repository
	matcher   lexicon.IMatcher
	generator inject.IGenerator
	player    playerPkg.IPlayer
	surface   surfacePkg.IHub
	redis     redisPkg.IRedis
	utils     utils.IUtils

	pending sync.Map

	lastMu      sync.Mutex
	lastActions map[string]playback.LastAction
}

func New(
	log *logrus.Logger,
	repo playbackRepository.Repository,
	matcher lexicon.IMatcher,
	generator inject.IGenerator,
	player playerPkg.IPlayer,
	surface surfacePkg.IHub,
	redis redisPkg.IRedis,
	utils utils.IUtils,
) IPlaybackService {
	svc := &playbackService{
		log:         log,
		repo:        repo,
		matcher:     matcher,
		generator:   generator,
		player:      player,
		surface:     surface,
		redis:       redis,
		utils:       utils,
		lastActions: make(map[string]playback.LastAction),
	}

	surface.SetReportHandler(svc.HandleReport)

	return svc
}
