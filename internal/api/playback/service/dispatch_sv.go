package playbackService

import (
	"context"
	"errors"
	"time"

	"VoicePlay/internal/api/playback"
	"VoicePlay/internal/entity"
	contextPkg "VoicePlay/pkg/context"
	redisPkg "VoicePlay/pkg/redis"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// dispatchLocale is assumed when the client does not say which
	// language the utterance is in.
	dispatchLocale = "zh-TW"

	recordTimeout  = 5 * time.Second
	pendingTimeout = 30 * time.Second
	lastActionTTL  = 5 * time.Second
)

func (s *playbackService) DispatchUtterance(ctx context.Context, userID string, req playback.UtteranceRequest) (*playback.DispatchResponse, error) {
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

	locale := req.Locale
	if locale == "" {
		locale = dispatchLocale
	}

	command := s.matcher.Match(req.Text, locale)
	label := s.matcher.Describe(command, locale)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"command":    command,
		"backend":    cached.Backend,
	}).Info("Voice utterance matched")

	resp := &playback.DispatchResponse{
		Command: command,
		Label:   label,
		Backend: cached.Backend,
	}

	if cached.Backend == entity.BackendNative {
		s.dispatchNative(userID, command, cached.Locator, resp)
		return resp, nil
	}

	// Unknown still goes down to the surface so the page reports the
	// miss; everything the embedded backend does flows through scripts.
	if !s.surface.IsAttached() {
		return nil, playback.ErrSurfaceNotAttached
	}

	controller := &embeddedController{
		svc:     s,
		userID:  userID,
		command: command,
		locator: cached.Locator,
	}

	if command == entity.CommandUnknown {
		err = controller.dispatch()
	} else {
		err = route(controller, command)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"command":    command,
			"error":      err.Error(),
		}).Warn("Script injection failed")
		return resp, nil
	}

	resp.Dispatched = true
	return resp, nil
}

// dispatchNative executes a command against the on-device player. Bridge
// failures are logged and recorded as failed actions but never surface
// to the caller; from the client's point of view the utterance was
// handled either way.
func (s *playbackService) dispatchNative(userID string, command entity.Command, locator string, resp *playback.DispatchResponse) {
	if command == entity.CommandUnknown {
		s.recordAction(userID, command, locator, false)
		return
	}

	controller := &nativeController{player: s.player, log: s.log}

	success := true
	if err := route(controller, command); err != nil {
		s.log.WithFields(logrus.Fields{
			"command": command,
			"error":   err.Error(),
		}).Warn("Native player command failed")
		success = false
	}

	resp.Dispatched = success
	resp.PositionMS = controller.positionMS

	s.recordAction(userID, command, locator, success)
	if success {
		s.setLastAction(userID, command, s.matcher.Describe(command, dispatchLocale))
	}
}

// inject generates a script for the command, registers its correlation
// token and pushes it to the surface. The action is not recorded here;
// that waits for the execution report, or for the pending entry to
// expire unanswered.
func (s *playbackService) inject(userID string, command entity.Command, locator string) error {
	token := uuid.New().String()

	s.pending.Store(token, pendingInjection{
		userID:  userID,
		command: command,
		locator: locator,
		issued:  time.Now(),
	})

	time.AfterFunc(pendingTimeout, func() {
		if _, loaded := s.pending.LoadAndDelete(token); loaded {
			s.log.WithFields(logrus.Fields{
				"command": command,
			}).Debug("Injection expired without an execution report")
		}
	})

	script := s.generator.Generate(command, token)

	if err := s.surface.ExecuteScript(script); err != nil {
		s.pending.Delete(token)
		s.recordAction(userID, command, locator, false)
		return err
	}

	return nil
}

// HandleReport consumes an execution report posted back by an injected
// script. Reports whose token is unknown, usually because the pending
// entry expired first, are dropped.
func (s *playbackService) HandleReport(report entity.ExecutionReport) {
	value, loaded := s.pending.LoadAndDelete(report.Token)
	if !loaded {
		s.log.WithFields(logrus.Fields{
			"success": report.Success,
		}).Debug("Dropping execution report with unknown token")
		return
	}

	p := value.(pendingInjection)

	fields := logrus.Fields{
		"command": p.command,
		"success": report.Success,
	}
	if report.Error != "" {
		fields["error"] = report.Error
	}
	s.log.WithFields(fields).Info("Execution report received")

	s.recordAction(p.userID, p.command, p.locator, report.Success)
	if report.Success {
		s.setLastAction(p.userID, p.command, s.matcher.Describe(p.command, dispatchLocale))
	}
}

func (s *playbackService) TestLexicon(req playback.LexiconTestRequest) *playback.LexiconTestResponse {
	locale := req.Locale
	if locale == "" {
		locale = dispatchLocale
	}

	command := s.matcher.Match(req.Text, locale)

	return &playback.LexiconTestResponse{
		Input:   req.Text,
		Locale:  locale,
		Command: command,
		Label:   s.matcher.Describe(command, locale),
	}
}

func (s *playbackService) LastAction(userID string) *playback.LastAction {
	s.lastMu.Lock()
	defer s.lastMu.Unlock()

	if last, ok := s.lastActions[userID]; ok {
		return &last
	}
	return nil
}

func (s *playbackService) setLastAction(userID string, command entity.Command, label string) {
	at := time.Now()

	s.lastMu.Lock()
	s.lastActions[userID] = playback.LastAction{
		Command: command,
		Label:   label,
		At:      at,
	}
	s.lastMu.Unlock()

	time.AfterFunc(lastActionTTL, func() {
		s.lastMu.Lock()
		defer s.lastMu.Unlock()
		if last, ok := s.lastActions[userID]; ok && last.At.Equal(at) {
			delete(s.lastActions, userID)
		}
	})
}

// recordAction persists the action fire and forget. Recording exists for
// the history view; a failed insert must never disturb playback, so the
// error is logged and dropped.
func (s *playbackService) recordAction(userID string, command entity.Command, locator string, success bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		actionID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Failed to generate action ID, skipping record")
			return
		}

		repo, err := s.repo.NewClient(false)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Failed to create repository client, skipping record")
			return
		}

		action := entity.VoiceAction{
			ID:        actionID,
			UserID:    userID,
			Command:   command.String(),
			Locator:   locator,
			Success:   success,
			CreatedAt: time.Now(),
		}

		if err := repo.Actions.CreateAction(ctx, action); err != nil {
			s.log.WithFields(logrus.Fields{
				"command": command,
				"error":   err.Error(),
			}).Warn("Failed to record voice action")
		}
	}()
}
