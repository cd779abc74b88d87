package sdl2

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/phanxgames/rowan/platform"
)

type font struct {
	f *ttf.Font
}

func (f *font) Close() {
	f.f.Close()
}

func (f *font) HasGlyph(r rune) bool {
	_, err := f.f.GlyphMetrics(r)
	return err == nil
}

func (f *font) MeasureText(text string) (int32, error) {
	if text == "" {
		return 0, nil
	}
	width, _, err := f.f.SizeUTF8(text)
	if err != nil {
		return 0, err
	}
	return int32(width), nil
}

func (f *font) RenderBlended(text string, r, g, b, a uint8) (platform.Surface, error) {
	s, err := f.f.RenderUTF8Blended(text, sdl.Color{R: r, G: g, B: b, A: a})
	if err != nil {
		return nil, err
	}
	return &surface{s: s}, nil
}

func (f *font) Height() int32 {
	return int32(f.f.Height())
}

// textEngine builds drawable text objects for one renderer. SDL2_ttf has
// no text engine of its own, so text objects rasterize through blended
// surfaces and cache the resulting texture until the color changes.
type textEngine struct {
	ren *sdl.Renderer
}

func (e *textEngine) Destroy() {}

func (e *textEngine) CreateText(f platform.Font, text string) (platform.Text, error) {
	src, ok := f.(*font)
	if !ok {
		return nil, errors.New("font was not opened by this backend")
	}
	return &drawableText{
		ren:   e.ren,
		font:  src,
		text:  text,
		color: sdl.Color{R: 255, G: 255, B: 255, A: 255},
	}, nil
}

type drawableText struct {
	ren   *sdl.Renderer
	font  *font
	text  string
	color sdl.Color

	tex    *sdl.Texture
	width  float32
	height float32
}

func clampColorComponent(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func (t *drawableText) SetColor(r, g, b, a float32) error {
	color := sdl.Color{
		R: clampColorComponent(r),
		G: clampColorComponent(g),
		B: clampColorComponent(b),
		A: clampColorComponent(a),
	}
	if color != t.color && t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
	t.color = color
	return nil
}

// render rasterizes the cached texture on demand.
func (t *drawableText) render() error {
	if t.tex != nil || t.text == "" {
		return nil
	}

	s, err := t.font.f.RenderUTF8Blended(t.text, t.color)
	if err != nil {
		return err
	}
	defer s.Free()

	tex, err := t.ren.CreateTextureFromSurface(s)
	if err != nil {
		return err
	}
	t.tex = tex
	t.width = float32(s.W)
	t.height = float32(s.H)
	return nil
}

func (t *drawableText) Draw(x, y float32) error {
	if err := t.render(); err != nil {
		return err
	}
	if t.tex == nil {
		return nil
	}
	dst := &sdl.FRect{X: x, Y: y, W: t.width, H: t.height}
	return t.ren.CopyF(t.tex, nil, dst)
}

func (t *drawableText) Destroy() {
	if t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
}
