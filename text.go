package rowan

import "github.com/phanxgames/rowan/platform"

// Font is an open font face at a fixed point size.
type Font struct {
	handle platform.Font
}

// textLineSpacing is the extra vertical spacing applied by backends that
// support it when drawing multi-line text.
var textLineSpacing int32

// LoadFont opens a font file at the given point size. Returns nil on
// failure.
func LoadFont(path string, size float32) *Font {
	if active == nil {
		SetError("cannot load font: not initialized")
		return nil
	}

	handle, err := active.host.OpenFont(path, size)
	if err != nil {
		SetError("failed to load font '%s': %v", path, err)
		return nil
	}
	return &Font{handle: handle}
}

// LoadFontEx opens a font and probes the given codepoints, logging a warning
// for each one the face cannot render. Returns nil on failure.
func LoadFontEx(path string, size float32, codepoints []rune) *Font {
	font := LoadFont(path, size)
	if font == nil {
		return nil
	}

	for _, cp := range codepoints {
		if !font.handle.HasGlyph(cp) {
			LogWarn("codepoint %d not available in font %s", cp, path)
		}
	}
	return font
}

// UnloadFont closes a font. Tolerates nil.
func UnloadFont(f *Font) {
	if f == nil || f.handle == nil {
		return
	}
	f.handle.Close()
	f.handle = nil
}

// SetTextLineSpacing sets the extra vertical spacing, in pixels, between
// lines of multi-line text. Backends without line spacing control ignore it.
func SetTextLineSpacing(spacing int32) {
	textLineSpacing = spacing
}

// MeasureText returns the laid-out width of text in pixels, including
// (len(text)-1) * spacing extra pixels of letter spacing for non-empty
// text. Returns 0 for a nil font or on failure.
func MeasureText(f *Font, text string, spacing float32) int32 {
	if f == nil || f.handle == nil || text == "" {
		return 0
	}

	width, err := f.handle.MeasureText(text)
	if err != nil {
		SetError("failed to measure text: %v", err)
		return 0
	}

	if spacing != 0 {
		width += int32(float32(len(text)-1) * spacing)
	}
	return width
}

// DrawText draws text at the given position through the renderer text
// engine. A nil font or empty text skips the draw silently.
func DrawText(f *Font, text string, position Vector2, tint Color) {
	if f == nil || f.handle == nil || text == "" {
		return
	}

	engine := ActiveTextEngine()
	if engine == nil {
		SetError("cannot draw text: no active text engine")
		return
	}

	obj, err := engine.CreateText(f.handle, text)
	if err != nil {
		SetError("failed to create text: %v", err)
		return
	}
	defer obj.Destroy()

	obj.SetColor(float32(tint.R)/255, float32(tint.G)/255,
		float32(tint.B)/255, float32(tint.A)/255)

	if err := obj.Draw(position.X, position.Y); err != nil {
		SetError("failed to draw text: %v", err)
	}
}

// DrawTextPro draws text rotated the given degrees about origin (relative
// to the text's top-left). The text is rasterized, uploaded as a one-shot
// texture, and drawn rotated.
func DrawTextPro(f *Font, text string, position, origin Vector2, rotation float32, tint Color) {
	if f == nil || f.handle == nil || text == "" {
		return
	}

	r := ActiveRenderer()
	if r == nil {
		SetError("cannot draw text: renderer not initialized")
		return
	}

	surface, err := f.handle.RenderBlended(text, tint.R, tint.G, tint.B, tint.A)
	if err != nil {
		SetError("failed to render text: %v", err)
		return
	}

	texture, err := r.CreateTextureFromSurface(surface)
	surface.Free()
	if err != nil {
		SetError("failed to create texture from text: %v", err)
		return
	}
	defer texture.Destroy()

	width, height, err := texture.Size()
	if err != nil {
		SetError("failed to query text texture size: %v", err)
		return
	}

	dst := platform.Rect{X: position.X, Y: position.Y, W: width, H: height}
	center := platform.Point{X: origin.X, Y: origin.Y}
	if err := r.CopyRotated(texture, nil, &dst, float64(rotation), center); err != nil {
		SetError("failed to draw text: %v", err)
	}
}
