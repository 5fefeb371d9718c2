package headless

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spaghettifunk/pixello/engine/platform"
)

type MusicState uint8

const (
	MusicHalted MusicState = iota
	MusicPlaying
	MusicPaused
)

// Only the container signature is checked; nothing is decoded or mixed.
var (
	wavMagic   = [][]byte{[]byte("RIFF")}
	musicMagic = [][]byte{[]byte("RIFF"), []byte("OggS"), []byte("ID3"), []byte("fLaC"), {0xFF, 0xFB}}
)

func checkSignature(path string, magics [][]byte) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, 12)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("read %s: %w", path, err)
	}
	header = header[:n]
	for _, m := range magics {
		if !bytes.HasPrefix(header, m) {
			continue
		}
		if bytes.Equal(m, []byte("RIFF")) && (len(header) < 12 || !bytes.Equal(header[8:12], []byte("WAVE"))) {
			return fmt.Errorf("%s: RIFF file is not WAVE", path)
		}
		return nil
	}
	return fmt.Errorf("%s: unsupported audio format", path)
}

type sound struct {
	volume int
	plays  []int
	freed  bool
}

func (b *Backend) LoadSound(path string) (platform.Sound, error) {
	if !b.Started(platform.SubsystemAudio) {
		return nil, fmt.Errorf("audio subsystem not started")
	}
	if err := checkSignature(path, wavMagic); err != nil {
		return nil, err
	}
	return &sound{volume: platform.MaxVolume}, nil
}

func (s *sound) Play(loops int) error {
	if s.freed {
		return fmt.Errorf("sound already freed")
	}
	s.plays = append(s.plays, loops)
	return nil
}

func (s *sound) SetVolume(volume int) { s.volume = volume }
func (s *sound) Free()                { s.freed = true }

type music struct {
	backend *Backend
	loops   int
	freed   bool
}

func (b *Backend) LoadMusic(path string) (platform.Music, error) {
	if !b.Started(platform.SubsystemAudio) {
		return nil, fmt.Errorf("audio subsystem not started")
	}
	if err := checkSignature(path, musicMagic); err != nil {
		return nil, err
	}
	return &music{backend: b}, nil
}

// Play replaces the current track.
func (m *music) Play(loops int) error {
	if m.freed {
		return fmt.Errorf("music already freed")
	}
	m.loops = loops
	m.backend.music = m
	m.backend.musicState = MusicPlaying
	return nil
}

// Free halts the track first when it is the one playing.
func (m *music) Free() {
	if m.backend.music == m {
		m.backend.HaltMusic()
	}
	m.freed = true
}

func (b *Backend) PauseMusic() {
	if b.musicState == MusicPlaying {
		b.musicState = MusicPaused
	}
}

func (b *Backend) ResumeMusic() {
	if b.musicState == MusicPaused {
		b.musicState = MusicPlaying
	}
}

func (b *Backend) HaltMusic() {
	b.music = nil
	b.musicState = MusicHalted
}

func (b *Backend) SetMusicVolume(volume int) {
	b.musicVolume = volume
}

func (b *Backend) MusicState() MusicState { return b.musicState }
func (b *Backend) MusicVolume() int       { return b.musicVolume }
