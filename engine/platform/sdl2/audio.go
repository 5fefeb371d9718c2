package sdl2

import (
	"github.com/veandco/go-sdl2/mix"

	"github.com/spaghettifunk/pixello/engine/platform"
)

type sound struct {
	c *mix.Chunk
}

func (b *Backend) LoadSound(path string) (platform.Sound, error) {
	c, err := mix.LoadWAV(path)
	if err != nil {
		return nil, err
	}
	return &sound{c: c}, nil
}

// Play uses the first free channel.
func (s *sound) Play(loops int) error {
	_, err := s.c.Play(-1, loops)
	return err
}

func (s *sound) SetVolume(volume int) {
	s.c.Volume(volume)
}

func (s *sound) Free() {
	s.c.Free()
}

type music struct {
	m *mix.Music
}

func (b *Backend) LoadMusic(path string) (platform.Music, error) {
	m, err := mix.LoadMUS(path)
	if err != nil {
		return nil, err
	}
	return &music{m: m}, nil
}

// Mix_PlayMusic counts total plays rather than repeats.
func (m *music) Play(loops int) error {
	return m.m.Play(platform.TotalPlays(loops))
}

func (m *music) Free() {
	m.m.Free()
}

func (b *Backend) PauseMusic()  { mix.PauseMusic() }
func (b *Backend) ResumeMusic() { mix.ResumeMusic() }
func (b *Backend) HaltMusic()   { mix.HaltMusic() }

func (b *Backend) SetMusicVolume(volume int) {
	mix.VolumeMusic(volume)
}
