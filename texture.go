package rowan

import "github.com/phanxgames/rowan/platform"

// Image is decoded pixel data in main memory, the staging form of a texture.
type Image struct {
	surface platform.Surface
}

// Width returns the image width in pixels.
func (img *Image) Width() int32 {
	if img == nil || img.surface == nil {
		return 0
	}
	w, _ := img.surface.Size()
	return w
}

// Height returns the image height in pixels.
func (img *Image) Height() int32 {
	if img == nil || img.surface == nil {
		return 0
	}
	_, h := img.surface.Size()
	return h
}

// Texture is GPU-resident image data bound to the active renderer.
type Texture struct {
	handle   platform.Texture
	renderer platform.Renderer
	Width    float32
	Height   float32
}

// LoadImage decodes an image file into main memory. Returns nil on failure.
func LoadImage(path string) *Image {
	if active == nil {
		SetError("cannot load image: not initialized")
		return nil
	}

	surface, err := active.host.LoadImage(path)
	if err != nil {
		SetError("failed to load image '%s': %v", path, err)
		return nil
	}
	return &Image{surface: surface}
}

// UnloadImage releases an image's pixel data. Tolerates nil.
func UnloadImage(img *Image) {
	if img == nil || img.surface == nil {
		return
	}
	img.surface.Free()
	img.surface = nil
}

// ImageToTexture uploads an image to the GPU. Returns nil on failure. The
// image remains valid and still needs UnloadImage.
func ImageToTexture(img *Image) *Texture {
	r := ActiveRenderer()
	if r == nil {
		SetError("cannot create texture: renderer not initialized")
		return nil
	}
	if img == nil || img.surface == nil {
		SetError("cannot create texture: nil image")
		return nil
	}

	handle, err := r.CreateTextureFromSurface(img.surface)
	if err != nil {
		SetError("failed to create texture from image: %v", err)
		return nil
	}

	width, height, err := handle.Size()
	if err != nil {
		handle.Destroy()
		SetError("failed to query texture size: %v", err)
		return nil
	}

	return &Texture{handle: handle, renderer: r, Width: width, Height: height}
}

// LoadTexture decodes an image file and uploads it to the GPU. Returns nil
// on failure.
func LoadTexture(path string) *Texture {
	img := LoadImage(path)
	if img == nil {
		return nil
	}
	defer UnloadImage(img)

	tex := ImageToTexture(img)
	if tex == nil {
		return nil
	}
	LogDebug("texture loaded: %s (%gx%g)", path, tex.Width, tex.Height)
	return tex
}

// UnloadTexture releases a texture's GPU memory. Tolerates nil.
func UnloadTexture(t *Texture) {
	if t == nil || t.handle == nil {
		return
	}
	t.handle.Destroy()
	t.handle = nil
}

// applyTint uploads the tint as the texture's color and alpha modulation.
func applyTint(t *Texture, tint Color) {
	t.handle.SetColorMod(tint.R, tint.G, tint.B)
	t.handle.SetAlphaMod(tint.A)
}

// drawable reports whether the texture can be drawn. Nil textures skip the
// draw silently.
func drawable(t *Texture) bool {
	return t != nil && t.handle != nil && t.renderer != nil
}

// DrawTexture draws the full texture at integer pixel coordinates.
func DrawTexture(t *Texture, x, y int32, tint Color) {
	DrawTextureV(t, Vector2{X: float32(x), Y: float32(y)}, tint)
}

// DrawTextureV draws the full texture at a floating-point position.
func DrawTextureV(t *Texture, position Vector2, tint Color) {
	if !drawable(t) {
		return
	}
	applyTint(t, tint)

	dst := platform.Rect{X: position.X, Y: position.Y, W: t.Width, H: t.Height}
	t.renderer.Copy(t.handle, nil, &dst)
}

// DrawTextureEx draws the full texture with uniform scale and a rotation in
// degrees about its top-left corner.
func DrawTextureEx(t *Texture, position Vector2, rotation, scale float32, tint Color) {
	if !drawable(t) {
		return
	}
	applyTint(t, tint)

	dst := platform.Rect{
		X: position.X,
		Y: position.Y,
		W: t.Width * scale,
		H: t.Height * scale,
	}
	t.renderer.CopyRotated(t.handle, nil, &dst, float64(rotation), platform.Point{})
}

// DrawTextureRec draws the given source sub-rectangle of the texture at a
// floating-point position.
func DrawTextureRec(t *Texture, source Rectangle, position Vector2, tint Color) {
	if !drawable(t) {
		return
	}
	applyTint(t, tint)

	src := toPlatformRect(source)
	dst := platform.Rect{X: position.X, Y: position.Y, W: source.Width, H: source.Height}
	t.renderer.Copy(t.handle, &src, &dst)
}

// DrawTexturePro draws the source sub-rectangle into the destination
// rectangle, rotated the given degrees about origin (in destination-local
// coordinates).
func DrawTexturePro(t *Texture, source, dest Rectangle, origin Vector2, rotation float32, tint Color) {
	if !drawable(t) {
		return
	}
	applyTint(t, tint)

	src := toPlatformRect(source)
	dst := toPlatformRect(dest)
	t.renderer.CopyRotated(t.handle, &src, &dst, float64(rotation),
		platform.Point{X: origin.X, Y: origin.Y})
}

// DrawTextureNPatch draws the texture as a 9-patch, 1x3, or 3x1 stretched
// arrangement: the border regions named in info keep their size while the
// center regions stretch to fill dest. Rotation is applied about
// dest.{X,Y}+origin.
func DrawTextureNPatch(t *Texture, info NPatchInfo, dest Rectangle, origin Vector2, rotation float32, tint Color) {
	if !drawable(t) || dest.Width <= 0 || dest.Height <= 0 {
		return
	}
	applyTint(t, tint)

	srcRects, dstRects := npatchRects(info, dest)
	if len(srcRects) == 0 {
		return
	}

	if rotation != 0 {
		// All patches rotate about the same point so the arrangement stays
		// rigid.
		center := platform.Point{X: dest.X + origin.X, Y: dest.Y + origin.Y}
		for i := range srcRects {
			src := toPlatformRect(srcRects[i])
			dst := toPlatformRect(dstRects[i])
			t.renderer.CopyRotated(t.handle, &src, &dst, float64(rotation), center)
		}
		return
	}

	for i := range srcRects {
		src := toPlatformRect(srcRects[i])
		dst := toPlatformRect(dstRects[i])
		t.renderer.Copy(t.handle, &src, &dst)
	}
}

// npatchRects computes the matched source and destination rectangles for an
// n-patch draw. Border sizes are scaled down when they exceed the source or
// destination dimensions; center regions stretch to fill the remainder.
func npatchRects(info NPatchInfo, dest Rectangle) (src, dst []Rectangle) {
	sx := info.Source.X
	sy := info.Source.Y
	sw := info.Source.Width
	sh := info.Source.Height

	left := float32(info.Left)
	right := float32(info.Right)
	top := float32(info.Top)
	bottom := float32(info.Bottom)

	// Borders may not exceed the source region.
	if left+right > sw && left+right > 0 {
		scale := sw / (left + right)
		left *= scale
		right *= scale
	}
	if top+bottom > sh && top+bottom > 0 {
		scale := sh / (top + bottom)
		top *= scale
		bottom *= scale
	}

	centerW := sw - left - right
	centerH := sh - top - bottom

	switch info.Layout {
	case NPatchNinePatch:
		stretchW := dest.Width - left - right
		stretchH := dest.Height - top - bottom
		if stretchW < 0 {
			scale := dest.Width / (left + right)
			left *= scale
			right *= scale
			stretchW = 0
		}
		if stretchH < 0 {
			scale := dest.Height / (top + bottom)
			top *= scale
			bottom *= scale
			stretchH = 0
		}

		srcX := [3]float32{sx, sx + left, sx + left + centerW}
		srcY := [3]float32{sy, sy + top, sy + top + centerH}
		srcW := [3]float32{left, centerW, right}
		srcH := [3]float32{top, centerH, bottom}

		dstX := [3]float32{dest.X, dest.X + left, dest.X + left + stretchW}
		dstY := [3]float32{dest.Y, dest.Y + top, dest.Y + top + stretchH}
		dstW := [3]float32{left, stretchW, right}
		dstH := [3]float32{top, stretchH, bottom}

		src = make([]Rectangle, 0, 9)
		dst = make([]Rectangle, 0, 9)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				src = append(src, Rectangle{srcX[col], srcY[row], srcW[col], srcH[row]})
				dst = append(dst, Rectangle{dstX[col], dstY[row], dstW[col], dstH[row]})
			}
		}

	case NPatchThreePatchHorizontal:
		stretchW := dest.Width - left - right
		if stretchW < 0 {
			scale := dest.Width / (left + right)
			left *= scale
			right *= scale
			stretchW = 0
		}

		src = []Rectangle{
			{sx, sy, left, sh},
			{sx + left, sy, centerW, sh},
			{sx + left + centerW, sy, right, sh},
		}
		dst = []Rectangle{
			{dest.X, dest.Y, left, dest.Height},
			{dest.X + left, dest.Y, stretchW, dest.Height},
			{dest.X + left + stretchW, dest.Y, right, dest.Height},
		}

	case NPatchThreePatchVertical:
		stretchH := dest.Height - top - bottom
		if stretchH < 0 {
			scale := dest.Height / (top + bottom)
			top *= scale
			bottom *= scale
			stretchH = 0
		}

		src = []Rectangle{
			{sx, sy, sw, top},
			{sx, sy + top, sw, centerH},
			{sx, sy + top + centerH, sw, bottom},
		}
		dst = []Rectangle{
			{dest.X, dest.Y, dest.Width, top},
			{dest.X, dest.Y + top, dest.Width, stretchH},
			{dest.X, dest.Y + top + stretchH, dest.Width, bottom},
		}
	}

	return src, dst
}

func toPlatformRect(r Rectangle) platform.Rect {
	return platform.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}
