package park

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
)

// sniffLen is the header size filetype needs to recognize every image format.
const sniffLen = 262

// Texture is a decoded image uploaded once at startup.
type Texture struct {
	Name   string
	Image  *ebiten.Image
	Width  int
	Height int
	// Strength is the mean luminance in [0,1]. It is the specular strength
	// when the texture is used as a specular map.
	Strength float32
	// Missing is set when the file could not be loaded and Image is the
	// black placeholder.
	Missing bool
}

// TextureCache maps file names under Dir to loaded textures. Textures are
// never freed before exit.
type TextureCache struct {
	Dir string
	// MaxSize downsizes textures whose larger side exceeds it. Zero keeps the
	// original size.
	MaxSize int

	logger   *slog.Logger
	textures map[string]*Texture
	// misses holds placeholders handed out by Get for names never loaded.
	misses map[string]*Texture
	blank    *ebiten.Image
	white    *ebiten.Image
}

// NewTextureCache creates an empty cache reading from dir.
func NewTextureCache(dir string, maxSize int, logger *slog.Logger) *TextureCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextureCache{
		Dir:      dir,
		MaxSize:  maxSize,
		logger:   logger,
		textures: make(map[string]*Texture),
		misses:   make(map[string]*Texture),
	}
}

// Load reads every named texture that is not cached yet. A file that cannot
// be loaded is logged and replaced by a black placeholder, so the viewer
// keeps running; the returned error joins every failure for callers that
// care.
func (c *TextureCache) Load(names ...string) error {
	var errs []error
	for _, name := range names {
		if _, ok := c.textures[name]; ok {
			continue
		}
		delete(c.misses, name)
		path := filepath.Join(c.Dir, name)
		img, err := decodeTexture(path, c.MaxSize)
		if err != nil {
			c.logger.Warn("texture failed to load", "path", path, "err", err)
			c.textures[name] = &Texture{Name: name, Image: c.placeholder(), Width: 1, Height: 1, Missing: true}
			errs = append(errs, err)
			continue
		}
		b := img.Bounds()
		c.textures[name] = &Texture{
			Name:     name,
			Image:    ebiten.NewImageFromImage(img),
			Width:    b.Dx(),
			Height:   b.Dy(),
			Strength: meanLuminance(img),
		}
		c.logger.Debug("texture loaded", "name", name, "width", b.Dx(), "height", b.Dy())
	}
	return errors.Join(errs...)
}

// Get returns the texture for name, or the placeholder if it was never
// loaded. A later Load of the name still reads the file.
func (c *TextureCache) Get(name string) *Texture {
	if t, ok := c.textures[name]; ok {
		return t
	}
	if t, ok := c.misses[name]; ok {
		return t
	}
	t := &Texture{Name: name, Image: c.placeholder(), Width: 1, Height: 1, Missing: true}
	c.misses[name] = t
	return t
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

// SpecularStrength returns the strength of the specular map for level. A
// missing map falls back to a built-in strength.
func (c *TextureCache) SpecularStrength(level SpecularLevel) float32 {
	t, ok := c.textures[SpecularMap(level)]
	if !ok || t.Missing {
		if int(level) < len(defaultSpecStrength) {
			return defaultSpecStrength[level]
		}
		return 0
	}
	return t.Strength
}

// placeholder returns the shared 1x1 black image used for missing files.
func (c *TextureCache) placeholder() *ebiten.Image {
	if c.blank == nil {
		c.blank = ebiten.NewImage(1, 1)
		c.blank.Fill(color.Black)
	}
	return c.blank
}

// whitePixel returns a 1x1 white image for untextured parts.
func (c *TextureCache) whitePixel() *ebiten.Image {
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(color.White)
	}
	return c.white
}

// decodeTexture opens path, checks by content that it is an image and
// decodes it. Images larger than maxSize on either side are scaled down
// keeping the aspect ratio.
func decodeTexture(path string, maxSize int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	f.Close()
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read texture %s: %w", path, err)
	}
	if !filetype.IsImage(head[:n]) {
		return nil, fmt.Errorf("texture %s: not an image", path)
	}

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return resizeMax(img, maxSize), nil
}

// resizeMax scales img so that its larger side is at most maxSize.
func resizeMax(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		return img
	}
	sz := img.Bounds().Size()
	if sz.X <= maxSize && sz.Y <= maxSize {
		return img
	}
	w, h := maxSize, maxSize
	if sz.X > sz.Y {
		h = max(1, sz.Y*maxSize/sz.X)
	} else {
		w = max(1, sz.X*maxSize/sz.Y)
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// meanLuminance returns the average Rec. 601 luma of img in [0,1].
func meanLuminance(img image.Image) float32 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			sum += 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)
		}
	}
	return float32(sum / float64(b.Dx()*b.Dy()) / 0xffff)
}
