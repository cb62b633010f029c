package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	// Sprites may be stored as GIF or JPEG as well as PNG.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/yalue/image_utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 20

// Sprites are the marker images drawn over the start and goal cells.
type Sprites struct {
	Start image.Image
	Goal  image.Image
}

// LoadSprite reads an image file and scales it to a square of side pixels.
func LoadSprite(path string, side int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sprite %s: %w", path, err)
	}
	defer f.Close()

	sprite, err := DecodeSprite(f, side)
	if err != nil {
		return nil, fmt.Errorf("loading sprite %s: %w", path, err)
	}
	return sprite, nil
}

// DecodeSprite decodes an image and scales it to a square of side pixels.
func DecodeSprite(r io.Reader, side int) (image.Image, error) {
	if side <= 0 {
		return nil, ErrBadSpriteSize
	}
	pic, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding sprite: %w", err)
	}
	return image_utils.ResizeImage(pic, side, side), nil
}

// LoadSprites loads the start and goal markers, both scaled to one cell.
func LoadSprites(startPath, goalPath string, cellPixels int) (Sprites, error) {
	start, err := LoadSprite(startPath, cellPixels)
	if err != nil {
		return Sprites{}, err
	}
	goal, err := LoadSprite(goalPath, cellPixels)
	if err != nil {
		return Sprites{}, err
	}
	return Sprites{Start: start, Goal: goal}, nil
}

// Compose rasterizes board and draws the sprites over its start and goal
// cells. A non-empty caption is written on a strip below the maze.
func Compose(board *Board, sprites Sprites, caption string) (*image.RGBA, error) {
	scene := image_utils.NewCompositeImage()
	if e := scene.AddImage(image_utils.ToRGBA(board), image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("setting base maze image: %w", e)
	}

	last := board.grid.Size() - 1
	if sprites.Start != nil {
		if e := scene.AddImage(sprites.Start, board.CellOrigin(0, 0)); e != nil {
			return nil, fmt.Errorf("adding start sprite: %w", e)
		}
	}
	if sprites.Goal != nil {
		if e := scene.AddImage(sprites.Goal, board.CellOrigin(last, last)); e != nil {
			return nil, fmt.Errorf("adding goal sprite: %w", e)
		}
	}

	pic := image_utils.ToRGBA(scene)
	if caption == "" {
		return pic, nil
	}
	return withCaption(pic, caption), nil
}

// EncodePNG composes the scene and writes it to w as a PNG.
func EncodePNG(w io.Writer, board *Board, sprites Sprites, caption string) error {
	pic, err := Compose(board, sprites, caption)
	if err != nil {
		return err
	}
	return png.Encode(w, pic)
}

// withCaption returns pic extended by a white strip holding text.
func withCaption(pic *image.RGBA, text string) *image.RGBA {
	bounds := pic.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+captionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, bounds.Dx(), bounds.Dy()), pic, bounds.Min, draw.Src)

	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(OutlineColor),
		Face: basicfont.Face7x13,
	}
	width := drawer.MeasureString(text).Round()
	x := max((bounds.Dx()-width)/2, 2)
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(x),
		Y: fixed.I(bounds.Dy() + 14),
	}
	drawer.DrawString(text)
	return out
}
