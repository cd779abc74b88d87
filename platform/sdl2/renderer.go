package sdl2

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/phanxgames/rowan/platform"
)

type renderer struct {
	ren *sdl.Renderer
}

func (r *renderer) Destroy() {
	r.ren.Destroy()
}

func (r *renderer) SetDrawColor(red, green, blue, alpha uint8) error {
	return r.ren.SetDrawColor(red, green, blue, alpha)
}

func (r *renderer) Clear() error {
	return r.ren.Clear()
}

func (r *renderer) Present() {
	r.ren.Present()
}

func (r *renderer) OutputSize() (int32, int32, error) {
	return r.ren.GetOutputSize()
}

func (r *renderer) CreateTextureFromSurface(s platform.Surface) (platform.Texture, error) {
	src, ok := s.(*surface)
	if !ok {
		return nil, errors.New("surface was not created by this backend")
	}
	tex, err := r.ren.CreateTextureFromSurface(src.s)
	if err != nil {
		return nil, err
	}
	return &texture{tex: tex}, nil
}

// toSrcRect converts a source rectangle to SDL's integer texel rect.
func toSrcRect(src *platform.Rect) *sdl.Rect {
	if src == nil {
		return nil
	}
	return &sdl.Rect{
		X: int32(src.X), Y: int32(src.Y),
		W: int32(src.W), H: int32(src.H),
	}
}

func toDstRect(dst *platform.Rect) *sdl.FRect {
	if dst == nil {
		return nil
	}
	return &sdl.FRect{X: dst.X, Y: dst.Y, W: dst.W, H: dst.H}
}

func (r *renderer) Copy(t platform.Texture, src, dst *platform.Rect) error {
	tex, ok := t.(*texture)
	if !ok {
		return errors.New("texture was not created by this backend")
	}
	return r.ren.CopyF(tex.tex, toSrcRect(src), toDstRect(dst))
}

func (r *renderer) CopyRotated(t platform.Texture, src, dst *platform.Rect, angleDeg float64, center platform.Point) error {
	tex, ok := t.(*texture)
	if !ok {
		return errors.New("texture was not created by this backend")
	}
	sdlCenter := &sdl.FPoint{X: center.X, Y: center.Y}
	return r.ren.CopyExF(tex.tex, toSrcRect(src), toDstRect(dst), angleDeg, sdlCenter, sdl.FLIP_NONE)
}

type texture struct {
	tex *sdl.Texture
}

func (t *texture) Destroy() {
	t.tex.Destroy()
}

func (t *texture) Size() (float32, float32, error) {
	_, _, w, h, err := t.tex.Query()
	if err != nil {
		return 0, 0, err
	}
	return float32(w), float32(h), nil
}

func (t *texture) SetColorMod(r, g, b uint8) error {
	return t.tex.SetColorMod(r, g, b)
}

func (t *texture) SetAlphaMod(a uint8) error {
	return t.tex.SetAlphaMod(a)
}

type surface struct {
	s *sdl.Surface
}

func (s *surface) Free() {
	s.s.Free()
}

func (s *surface) Size() (int32, int32) {
	return s.s.W, s.s.H
}
