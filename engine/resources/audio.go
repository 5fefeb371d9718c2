package resources

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/pixello/engine/platform"
)

// Sound is a decoded effect (a mixer chunk).
type Sound struct {
	r      *ref
	native platform.Sound
}

func NewSound(path string, tracker *Tracker, load func() (platform.Sound, error)) (Sound, error) {
	native, r, err := acquire(ResourceTypeSound, path, tracker, load, func(s platform.Sound) {
		s.Free()
	})
	if err != nil {
		return Sound{}, err
	}
	return Sound{r: r, native: native}, nil
}

func (s Sound) Valid() bool { return s.r.alive() }

func (s Sound) Native() platform.Sound {
	if !s.Valid() {
		return nil
	}
	return s.native
}

func (s Sound) Clone() Sound {
	r := s.r.clone()
	if r == nil {
		return Sound{}
	}
	return Sound{r: r, native: s.native}
}

func (s Sound) Release() { s.r.drop() }

func (s Sound) ID() uuid.UUID { return s.r.id() }

func (s Sound) References() int32 { return s.r.references() }

// Music is a streamed track. Only one plays at a time.
type Music struct {
	r      *ref
	native platform.Music
}

func NewMusic(path string, tracker *Tracker, load func() (platform.Music, error)) (Music, error) {
	native, r, err := acquire(ResourceTypeMusic, path, tracker, load, func(m platform.Music) {
		m.Free()
	})
	if err != nil {
		return Music{}, err
	}
	return Music{r: r, native: native}, nil
}

func (m Music) Valid() bool { return m.r.alive() }

func (m Music) Native() platform.Music {
	if !m.Valid() {
		return nil
	}
	return m.native
}

func (m Music) Clone() Music {
	r := m.r.clone()
	if r == nil {
		return Music{}
	}
	return Music{r: r, native: m.native}
}

func (m Music) Release() { m.r.drop() }

func (m Music) ID() uuid.UUID { return m.r.id() }

func (m Music) References() int32 { return m.r.references() }
