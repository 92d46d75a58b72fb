package playbackService

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"VoicePlay/internal/api/playback"
	playbackRepository "VoicePlay/internal/api/playback/repository"
	"VoicePlay/internal/entity"
	"VoicePlay/pkg/inject"
	"VoicePlay/pkg/lexicon"
	redisPkg "VoicePlay/pkg/redis"
	surfacePkg "VoicePlay/pkg/surface"
	"VoicePlay/pkg/utils"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type fakePlayer struct {
	mu        sync.Mutex
	position  int64
	setCalls  []int64
	playCalls int
	playErr   error
}

func (p *fakePlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playCalls++
	return p.playErr
}

func (p *fakePlayer) Pause() error { return nil }

func (p *fakePlayer) GetPosition() (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position, nil
}

func (p *fakePlayer) SetPosition(positionMS int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setCalls = append(p.setCalls, positionMS)
	p.position = positionMS
	return nil
}

func (p *fakePlayer) IsConnected() bool { return true }
func (p *fakePlayer) Reconnect() error  { return nil }
func (p *fakePlayer) Close()            {}

type fakeSurface struct {
	mu       sync.Mutex
	attached bool
	scripts  []string
	handler  surfacePkg.ReportHandler
}

func (s *fakeSurface) ExecuteScript(script string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return errors.New("no surface attached")
	}
	s.scripts = append(s.scripts, script)
	return nil
}

func (s *fakeSurface) SetReportHandler(handler surfacePkg.ReportHandler) {
	s.handler = handler
}

func (s *fakeSurface) Attach(_ *websocket.Conn) {}

func (s *fakeSurface) IsAttached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

type fakeRedis struct {
	mu      sync.Mutex
	target  entity.PlaybackTarget
	present bool
	setNX   int
	deletes int
}

func (r *fakeRedis) SetTargetNX(_ context.Context, _ string, target entity.PlaybackTarget, _ time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setNX++
	if r.present {
		return false, nil
	}
	r.target = target
	r.present = true
	return true, nil
}

func (r *fakeRedis) GetTarget(_ context.Context, _ string) (entity.PlaybackTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.present {
		return entity.PlaybackTarget{}, redisPkg.ErrTargetNotFound
	}
	return r.target, nil
}

func (r *fakeRedis) DeleteTarget(_ context.Context, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	r.present = false
	return nil
}

type fakeActions struct {
	recorded chan entity.VoiceAction
	stored   []entity.VoiceAction
}

func (a *fakeActions) CreateAction(_ context.Context, action entity.VoiceAction) error {
	a.recorded <- action
	return nil
}

func (a *fakeActions) GetActionsByUserID(_ context.Context, _ string, limit, offset int) ([]entity.VoiceAction, int, error) {
	if offset >= len(a.stored) {
		return nil, len(a.stored), nil
	}
	end := offset + limit
	if end > len(a.stored) {
		end = len(a.stored)
	}
	return a.stored[offset:end], len(a.stored), nil
}

func (a *fakeActions) GetAllActionsByUserID(_ context.Context, _ string) ([]entity.VoiceAction, error) {
	return a.stored, nil
}

type fakeSessions struct {
	mu      sync.Mutex
	created []entity.PlaybackSession
}

func (s *fakeSessions) CreateSession(_ context.Context, session entity.PlaybackSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, session)
	return nil
}

func (s *fakeSessions) GetLatestSessionByUserID(_ context.Context, _ string) (entity.PlaybackSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.created) == 0 {
		return entity.PlaybackSession{}, playback.ErrSessionNotFound
	}
	return s.created[len(s.created)-1], nil
}

type fakeRepository struct {
	actions  *fakeActions
	sessions *fakeSessions
}

func (r *fakeRepository) NewClient(_ bool) (playbackRepository.Client, error) {
	return playbackRepository.Client{
		Actions:  r.actions,
		Sessions: r.sessions,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fixture struct {
	svc      IPlaybackService
	player   *fakePlayer
	surface  *fakeSurface
	redis    *fakeRedis
	actions  *fakeActions
	sessions *fakeSessions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	player := &fakePlayer{}
	surface := &fakeSurface{}
	redis := &fakeRedis{}
	actions := &fakeActions{recorded: make(chan entity.VoiceAction, 8)}
	sessions := &fakeSessions{}
	repo := &fakeRepository{actions: actions, sessions: sessions}

	svc := New(
		logger,
		repo,
		lexicon.NewMatcher(),
		inject.NewGenerator(),
		player,
		surface,
		redis,
		utils.New(),
	)

	return &fixture{
		svc:      svc,
		player:   player,
		surface:  surface,
		redis:    redis,
		actions:  actions,
		sessions: sessions,
	}
}

func (f *fixture) waitForAction(t *testing.T) entity.VoiceAction {
	t.Helper()
	select {
	case action := <-f.actions.recorded:
		return action
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for recorded action")
		return entity.VoiceAction{}
	}
}

func (f *fixture) expectNoAction(t *testing.T) {
	t.Helper()
	select {
	case action := <-f.actions.recorded:
		t.Fatalf("unexpected action recorded: %+v", action)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDispatchNativeSeek(t *testing.T) {
	f := newFixture(t)
	f.redis.target = entity.PlaybackTarget{
		Locator:     "https://cdn.example.com/video.mp4",
		Backend:     entity.BackendNative,
		DirectMedia: true,
	}
	f.redis.present = true
	f.player.position = 20000

	resp, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text: "請快轉十秒",
	})
	if err != nil {
		t.Fatalf("DispatchUtterance returned error: %v", err)
	}

	if resp.Command != entity.CommandForward10 {
		t.Errorf("Command = %q, want forward10", resp.Command)
	}
	if !resp.Dispatched {
		t.Error("Dispatched = false, want true")
	}
	if resp.PositionMS == nil || *resp.PositionMS != 30000 {
		t.Errorf("PositionMS = %v, want 30000", resp.PositionMS)
	}
	if len(f.player.setCalls) != 1 || f.player.setCalls[0] != 30000 {
		t.Errorf("SetPosition calls = %v, want [30000]", f.player.setCalls)
	}

	action := f.waitForAction(t)
	if action.Command != "forward10" || !action.Success {
		t.Errorf("recorded action = %+v, want successful forward10", action)
	}
}

func TestDispatchNativeSeekClampsAtZero(t *testing.T) {
	f := newFixture(t)
	f.redis.target = entity.PlaybackTarget{
		Locator: "https://cdn.example.com/video.mp4",
		Backend: entity.BackendNative,
	}
	f.redis.present = true
	f.player.position = 4000

	resp, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text:   "rewind a bit",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("DispatchUtterance returned error: %v", err)
	}

	if resp.Command != entity.CommandBackward10 {
		t.Errorf("Command = %q, want backward10", resp.Command)
	}
	if resp.PositionMS == nil || *resp.PositionMS != 0 {
		t.Errorf("PositionMS = %v, want 0", resp.PositionMS)
	}

	f.waitForAction(t)
}

func TestDispatchNativeUnknown(t *testing.T) {
	f := newFixture(t)
	f.redis.target = entity.PlaybackTarget{
		Locator: "https://cdn.example.com/video.mp4",
		Backend: entity.BackendNative,
	}
	f.redis.present = true

	resp, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text:   "what a lovely day",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("DispatchUtterance returned error: %v", err)
	}

	if resp.Command != entity.CommandUnknown {
		t.Errorf("Command = %q, want unknown", resp.Command)
	}
	if resp.Dispatched {
		t.Error("Dispatched = true for unknown command")
	}
	if f.player.playCalls != 0 || len(f.player.setCalls) != 0 {
		t.Error("player was called for an unknown command")
	}

	action := f.waitForAction(t)
	if action.Command != "unknown" || action.Success {
		t.Errorf("recorded action = %+v, want failed unknown", action)
	}
}

func TestDispatchNativeFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.redis.target = entity.PlaybackTarget{
		Locator: "https://cdn.example.com/video.mp4",
		Backend: entity.BackendNative,
	}
	f.redis.present = true
	f.player.playErr = errors.New("bridge down")

	resp, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text:   "play",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("DispatchUtterance must swallow native failures, got: %v", err)
	}
	if resp.Dispatched {
		t.Error("Dispatched = true despite native failure")
	}

	action := f.waitForAction(t)
	if action.Success {
		t.Error("recorded action marked successful despite native failure")
	}
}

func TestDispatchWithoutSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text: "play", Locale: "en",
	})
	if !errors.Is(err, playback.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestDispatchEmbeddedWithoutSurface(t *testing.T) {
	f := newFixture(t)
	f.redis.target = entity.PlaybackTarget{
		Locator: "https://youtube.com/watch?v=x",
		Backend: entity.BackendEmbedded,
	}
	f.redis.present = true

	_, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text: "play", Locale: "en",
	})
	if !errors.Is(err, playback.ErrSurfaceNotAttached) {
		t.Errorf("err = %v, want ErrSurfaceNotAttached", err)
	}
}

var tokenPattern = regexp.MustCompile(`payload\.token = '([^']+)'`)

func TestDispatchEmbeddedRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.redis.target = entity.PlaybackTarget{
		Locator: "https://youtube.com/watch?v=x",
		Backend: entity.BackendEmbedded,
	}
	f.redis.present = true
	f.surface.attached = true

	resp, err := f.svc.DispatchUtterance(context.Background(), "user-1", playback.UtteranceRequest{
		Text:   "play the video",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("DispatchUtterance returned error: %v", err)
	}
	if !resp.Dispatched {
		t.Error("Dispatched = false, want true")
	}
	if resp.PositionMS != nil {
		t.Error("embedded dispatch should not report a position")
	}

	if len(f.surface.scripts) != 1 {
		t.Fatalf("scripts injected = %d, want 1", len(f.surface.scripts))
	}
	script := f.surface.scripts[0]
	if !strings.Contains(script, "video.play()") {
		t.Error("injected script does not play the video")
	}

	// No action yet: recording waits for the execution report.
	f.expectNoAction(t)

	match := tokenPattern.FindStringSubmatch(script)
	if match == nil {
		t.Fatal("injected script carries no correlation token")
	}

	f.svc.HandleReport(entity.ExecutionReport{Token: match[1], Success: true})

	action := f.waitForAction(t)
	if action.Command != "play" || !action.Success {
		t.Errorf("recorded action = %+v, want successful play", action)
	}

	last := f.svc.LastAction("user-1")
	if last == nil || last.Command != entity.CommandPlay {
		t.Errorf("LastAction = %+v, want play", last)
	}
}

func TestHandleReportUnknownTokenIsDropped(t *testing.T) {
	f := newFixture(t)

	f.svc.HandleReport(entity.ExecutionReport{Token: "never-issued", Success: true})

	f.expectNoAction(t)
}

func TestTestLexicon(t *testing.T) {
	f := newFixture(t)

	resp := f.svc.TestLexicon(playback.LexiconTestRequest{Text: "快轉三十秒"})
	if resp.Locale != "zh-TW" {
		t.Errorf("Locale = %q, want the zh-TW default", resp.Locale)
	}
	// 快轉 precedes 快轉三十秒 in the table, shadowing is intentional.
	if resp.Command != entity.CommandForward10 {
		t.Errorf("Command = %q, want forward10", resp.Command)
	}
	if resp.Label == "" {
		t.Error("Label is empty")
	}
}
