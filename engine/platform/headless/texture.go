package headless

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/spaghettifunk/pixello/engine/platform"
)

type texture struct {
	img       *image.RGBA
	destroyed bool
}

func newTexture(img image.Image) *texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &texture{img: rgba}
}

func (t *texture) Size() (int32, int32) {
	b := t.img.Bounds()
	return int32(b.Dx()), int32(b.Dy())
}

func (t *texture) Destroy() error {
	if t.destroyed {
		return fmt.Errorf("texture already destroyed")
	}
	t.destroyed = true
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (r *renderer) LoadTexture(path string) (platform.Texture, error) {
	if !r.backend.Started(platform.SubsystemImage) {
		return nil, fmt.Errorf("image subsystem not started")
	}
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return newTexture(img), nil
}
