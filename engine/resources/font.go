package resources

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/pixello/engine/platform"
)

// Font is a shared rasterizer handle used to create text textures.
type Font struct {
	r      *ref
	native platform.Font
	size   int
}

func NewFont(path string, size int, tracker *Tracker, load func() (platform.Font, error)) (Font, error) {
	native, r, err := acquire(ResourceTypeFont, path, tracker, load, func(f platform.Font) {
		f.Close()
	})
	if err != nil {
		return Font{}, err
	}
	return Font{r: r, native: native, size: size}, nil
}

func (f Font) Valid() bool { return f.r.alive() }

func (f Font) Size() int { return f.size }

func (f Font) Native() platform.Font {
	if !f.Valid() {
		return nil
	}
	return f.native
}

func (f Font) Clone() Font {
	r := f.r.clone()
	if r == nil {
		return Font{}
	}
	return Font{r: r, native: f.native, size: f.size}
}

func (f Font) Release() { f.r.drop() }

func (f Font) ID() uuid.UUID { return f.r.id() }

func (f Font) References() int32 { return f.r.references() }
