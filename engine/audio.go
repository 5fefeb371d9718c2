package engine

import (
	gomath "math"

	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/platform"
	"github.com/spaghettifunk/pixello/engine/resources"
)

// Volumes are fractions in [0, 1). loops is the number of extra repeats;
// -1 repeats forever.

func (e *Engine) audioReady() error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.subsystems&platform.SubsystemAudio == 0 {
		return &core.RuntimeError{Op: "audio", Err: core.ErrNotInitialized}
	}
	return nil
}

func scaleVolume(v float64) (int, error) {
	if gomath.IsNaN(v) || v < 0 || v >= 1 {
		return 0, &core.InputError{Param: "volume", Value: v, Reason: "must be in [0, 1)"}
	}
	return int(v * platform.MaxVolume), nil
}

func (e *Engine) PlaySound(s resources.Sound, loops int) error {
	if err := e.audioReady(); err != nil {
		return err
	}
	native := s.Native()
	if native == nil {
		return core.ErrInvalidResource
	}
	return runtimeError("play sound", native.Play(loops))
}

func (e *Engine) SetSoundVolume(s resources.Sound, v float64) error {
	volume, err := scaleVolume(v)
	if err != nil {
		return err
	}
	if err := e.audioReady(); err != nil {
		return err
	}
	native := s.Native()
	if native == nil {
		return core.ErrInvalidResource
	}
	native.SetVolume(volume)
	return nil
}

// PlayMusic replaces whatever track is playing.
func (e *Engine) PlayMusic(m resources.Music, loops int) error {
	if err := e.audioReady(); err != nil {
		return err
	}
	native := m.Native()
	if native == nil {
		return core.ErrInvalidResource
	}
	return runtimeError("play music", native.Play(loops))
}

func (e *Engine) PauseMusic() error {
	if err := e.audioReady(); err != nil {
		return err
	}
	e.backend.PauseMusic()
	return nil
}

func (e *Engine) ResumeMusic() error {
	if err := e.audioReady(); err != nil {
		return err
	}
	e.backend.ResumeMusic()
	return nil
}

func (e *Engine) StopMusic() error {
	if err := e.audioReady(); err != nil {
		return err
	}
	e.backend.HaltMusic()
	return nil
}

func (e *Engine) SetMusicVolume(v float64) error {
	volume, err := scaleVolume(v)
	if err != nil {
		return err
	}
	if err := e.audioReady(); err != nil {
		return err
	}
	e.backend.SetMusicVolume(volume)
	return nil
}
