package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Texture owns one 2D RGBA texture.
type Texture struct {
	dev    *Device
	id     uint32
	width  int
	height int
}

// LoadTexture decodes the PNG, JPEG or BMP image at path into a texture.
func LoadTexture(dev *Device, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTexture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("LoadTexture(%v): %w", path, err)
	}
	return NewTexture(dev, img)
}

// NewTexture uploads img as a texture with linear filtering and
// clamped edges.
func NewTexture(dev *Device, img image.Image) (*Texture, error) {
	rgba := toRGBA(img)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("NewTexture: %w", ErrEmptyData)
	}
	// GL's first row is the bottom of the image.
	flipRows(rgba)

	gl := dev.gl
	var id uint32
	ok := dev.call("GenTextures", func() { id = gl.GenTexture() })
	if !ok || id == 0 {
		if id != 0 {
			gl.DeleteTexture(id)
		}
		return nil, fmt.Errorf("NewTexture: %w", ErrResourceCreate)
	}

	uploaded := false
	defer func() {
		if !uploaded {
			gl.DeleteTexture(id)
		}
	}()

	dev.call("BindTexture", func() { gl.BindTexture(TEXTURE_2D, id) })
	dev.call("TexParameteri", func() {
		gl.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, LINEAR)
		gl.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, LINEAR)
		gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, CLAMP_TO_EDGE)
		gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, CLAMP_TO_EDGE)
	})
	if !dev.call("TexImage2D", func() { gl.TexImage2D(TEXTURE_2D, int32(w), int32(h), rgba.Pix) }) {
		return nil, fmt.Errorf("NewTexture: %w: uploading %vx%v image", ErrResourceCreate, w, h)
	}
	dev.call("BindTexture(0)", func() { gl.BindTexture(TEXTURE_2D, 0) })

	uploaded = true
	return &Texture{dev: dev, id: id, width: w, height: h}, nil
}

func (t *Texture) ID() uint32 { return t.id }
func (t *Texture) Width() int { return t.width }
func (t *Texture) Height() int { return t.height }

// Bind binds t to the given texture unit. The shader samples it through
// a sampler uniform set to the same slot.
func (t *Texture) Bind(slot uint32) {
	t.dev.call("ActiveTexture", func() { t.dev.gl.ActiveTexture(slot) })
	t.dev.call("BindTexture", func() { t.dev.gl.BindTexture(TEXTURE_2D, t.id) })
}

func (t *Texture) Unbind() {
	t.dev.call("BindTexture(0)", func() { t.dev.gl.BindTexture(TEXTURE_2D, 0) })
}

// Delete releases the texture. Calling it again is a no-op.
func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	id := t.id
	t.id = 0
	t.dev.call("DeleteTextures", func() { t.dev.gl.DeleteTexture(id) })
}

// toRGBA returns img as a tightly packed RGBA image with a zero origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(out, image.Point{}, img, b, draw.Src, nil)
	return out
}

// flipRows reverses the row order of img in place.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := 4 * img.Rect.Dx()
	tmp := make([]byte, rowLen)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		b := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
