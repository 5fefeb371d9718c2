package resources

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/platform"
)

// Texture is a cheap value over a shared native texture. Assigning a Texture
// shares the same owner; Clone adds an owner that must be released on its own.
// The zero value is invalid for drawing.
//
// A texture must be released before the renderer that created it is destroyed.
type Texture struct {
	r      *ref
	native platform.Texture
	width  int32
	height int32
}

// NewTexture runs load and takes ownership of the returned handle. Width and
// height are captured once here.
func NewTexture(path string, tracker *Tracker, load func() (platform.Texture, error)) (Texture, error) {
	native, r, err := acquire(ResourceTypeTexture, path, tracker, load, func(t platform.Texture) {
		if err := t.Destroy(); err != nil {
			core.LogError("failed to destroy texture %q: %s", path, err)
		}
	})
	if err != nil {
		return Texture{}, err
	}
	w, h := native.Size()
	return Texture{r: r, native: native, width: w, height: h}, nil
}

func (t Texture) Valid() bool {
	return t.r.alive()
}

func (t Texture) Width() int32  { return t.width }
func (t Texture) Height() int32 { return t.height }

func (t Texture) Size() (int32, int32) {
	return t.width, t.height
}

// Native returns the backend handle, or nil once the value is released.
func (t Texture) Native() platform.Texture {
	if !t.Valid() {
		return nil
	}
	return t.native
}

// Clone returns a new owner of the same native texture. Cloning an invalid
// texture returns the zero value.
func (t Texture) Clone() Texture {
	r := t.r.clone()
	if r == nil {
		return Texture{}
	}
	return Texture{r: r, native: t.native, width: t.width, height: t.height}
}

// Release drops this owner. The native texture is destroyed with the last owner.
func (t Texture) Release() {
	t.r.drop()
}

func (t Texture) ID() uuid.UUID {
	return t.r.id()
}

// References returns how many owners currently share the native texture.
func (t Texture) References() int32 {
	return t.r.references()
}
