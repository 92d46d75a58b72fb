package playbackService

import (
	"VoicePlay/internal/entity"
	playerPkg "VoicePlay/pkg/player"

	"github.com/sirupsen/logrus"
)

// playbackController is the per-dispatch control surface over whichever
// backend the session classified to. Implementations absorb capability
// gaps themselves: an operation the backend cannot perform is a silent
// no-op, never an error.
type playbackController interface {
	Play() error
	Pause() error
	SeekRelative(offsetMS int64) error
	Restart() error
	StepVolume(delta float64) error
	EnterFullscreen() error
	ExitFullscreen() error
	SetMuted(muted bool) error
	CycleSpeed() error
}

// nativeController drives the on-device player over the bridge. The
// bridge speaks positions only, so volume, fullscreen, mute and speed
// have nowhere to go and fall through as no-ops. positionMS records the
// position a seek landed on, for the dispatch response.
type nativeController struct {
	player     playerPkg.IPlayer
	log        *logrus.Logger
	positionMS *int64
}

func (c *nativeController) Play() error {
	return c.player.Play()
}

func (c *nativeController) Pause() error {
	return c.player.Pause()
}

func (c *nativeController) SeekRelative(offsetMS int64) error {
	current, err := c.player.GetPosition()
	if err != nil {
		return err
	}

	next := current + offsetMS
	if next < 0 {
		next = 0
	}

	if err := c.player.SetPosition(next); err != nil {
		return err
	}

	c.positionMS = &next
	return nil
}

func (c *nativeController) Restart() error {
	if err := c.player.SetPosition(0); err != nil {
		return err
	}

	zero := int64(0)
	c.positionMS = &zero

	return c.player.Play()
}

func (c *nativeController) StepVolume(delta float64) error {
	c.log.Debug("Native player has no volume control, ignoring")
	return nil
}

func (c *nativeController) EnterFullscreen() error {
	c.log.Debug("Native player manages its own presentation, ignoring fullscreen")
	return nil
}

func (c *nativeController) ExitFullscreen() error {
	c.log.Debug("Native player manages its own presentation, ignoring fullscreen")
	return nil
}

func (c *nativeController) SetMuted(muted bool) error {
	c.log.Debug("Native player has no mute control, ignoring")
	return nil
}

func (c *nativeController) CycleSpeed() error {
	c.log.Debug("Native player has no rate control, ignoring")
	return nil
}

// embeddedController routes every operation through script injection.
// The command is fixed at construction, so all methods collapse into the
// same injection call; the per-operation behavior lives in the generated
// script, not here.
type embeddedController struct {
	svc     *playbackService
	userID  string
	command entity.Command
	locator string
}

func (c *embeddedController) dispatch() error {
	return c.svc.inject(c.userID, c.command, c.locator)
}

func (c *embeddedController) Play() error                { return c.dispatch() }
func (c *embeddedController) Pause() error               { return c.dispatch() }
func (c *embeddedController) SeekRelative(_ int64) error { return c.dispatch() }
func (c *embeddedController) Restart() error             { return c.dispatch() }
func (c *embeddedController) StepVolume(_ float64) error { return c.dispatch() }
func (c *embeddedController) EnterFullscreen() error     { return c.dispatch() }
func (c *embeddedController) ExitFullscreen() error      { return c.dispatch() }
func (c *embeddedController) SetMuted(_ bool) error      { return c.dispatch() }
func (c *embeddedController) CycleSpeed() error          { return c.dispatch() }

// route maps a canonical command onto the controller operation that
// realizes it. Seek distances are fixed by the vocabulary; milliseconds
// because that is what the native bridge speaks.
func route(controller playbackController, command entity.Command) error {
	switch command {
	case entity.CommandPlay:
		return controller.Play()
	case entity.CommandPause:
		return controller.Pause()
	case entity.CommandForward10:
		return controller.SeekRelative(10000)
	case entity.CommandBackward10:
		return controller.SeekRelative(-10000)
	case entity.CommandForward30:
		return controller.SeekRelative(30000)
	case entity.CommandBackward30:
		return controller.SeekRelative(-30000)
	case entity.CommandVolumeUp:
		return controller.StepVolume(0.1)
	case entity.CommandVolumeDown:
		return controller.StepVolume(-0.1)
	case entity.CommandFullscreen:
		return controller.EnterFullscreen()
	case entity.CommandExitFullscreen:
		return controller.ExitFullscreen()
	case entity.CommandRestart:
		return controller.Restart()
	case entity.CommandSpeed:
		return controller.CycleSpeed()
	case entity.CommandMute:
		return controller.SetMuted(true)
	case entity.CommandUnmute:
		return controller.SetMuted(false)
	default:
		return nil
	}
}
