package render

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-drift/flipclock/pkg/graphics"
)

type faceKey struct {
	family string
	weight graphics.FontWeight
	size   float64
}

// FontCache parses the bundled Go fonts once and caches sized faces.
type FontCache struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFontCache returns an empty cache.
func NewFontCache() *FontCache {
	return &FontCache{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

func fontData(family string, weight graphics.FontWeight) (string, []byte, error) {
	bold := weight >= graphics.FontWeightBold
	switch strings.ToLower(family) {
	case "", "go", "sans":
		if bold {
			return "gobold", gobold.TTF, nil
		}
		return "goregular", goregular.TTF, nil
	case "mono", "gomono", "monospace":
		if bold {
			return "gomonobold", gomonobold.TTF, nil
		}
		return "gomono", gomono.TTF, nil
	default:
		return "", nil, fmt.Errorf("unknown font family %q", family)
	}
}

// Face returns a face for f at size points.
func (c *FontCache) Face(f graphics.Font, size float64) (font.Face, error) {
	key := faceKey{family: strings.ToLower(f.Family), weight: f.Weight, size: size}

	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	name, data, err := fontData(f.Family, f.Weight)
	if err != nil {
		return nil, err
	}
	parsed, ok := c.fonts[name]
	if !ok {
		parsed, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.fonts[name] = parsed
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s@%v: %w", name, size, err)
	}
	c.faces[key] = face
	return face, nil
}

// Close releases every cached face.
func (c *FontCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var first error
	for k, face := range c.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(c.faces, k)
	}
	return first
}
