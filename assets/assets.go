package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:images
	imageFS embed.FS

	//go:embed all:courses
	courseFS embed.FS
)

// ObstacleSpawn is a hand-placed obstacle from the course file.
type ObstacleSpawn struct {
	X        float64
	Y        float64
	Category string
}

// Course describes the run layout parsed from a Tiled course file.
type Course struct {
	Name           string
	Width          float64 // playable slope width in pixels
	SkierSpawnX    float64
	SkierSpawnY    float64
	ObstacleSpawns []ObstacleSpawn
}

type imageLoader struct {
	cache map[string]*ebiten.Image
	sizes map[string]image.Point
}

func newImageLoader() *imageLoader {
	return &imageLoader{
		cache: make(map[string]*ebiten.Image),
		sizes: make(map[string]image.Point),
	}
}

var loader = newImageLoader()

// MustLoadImage returns the named sprite, decoding and caching it on first use.
func (l *imageLoader) MustLoadImage(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(imagePath(name))
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", name, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", name, err))
	}

	l.cache[name] = img

	return img
}

// size reads only the PNG header, so it works without a graphics context.
func (l *imageLoader) size(name string) (int, int, bool) {
	if p, ok := l.sizes[name]; ok {
		return p.X, p.Y, true
	}

	f, err := imageFS.Open(imagePath(name))
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, false
	}

	l.sizes[name] = image.Point{X: cfg.Width, Y: cfg.Height}
	return cfg.Width, cfg.Height, true
}

func imagePath(name string) string {
	return fmt.Sprintf("images/%s.png", name)
}

// GetImage returns the sprite registered under the given name.
func GetImage(name string) *ebiten.Image {
	return loader.MustLoadImage(name)
}

// ImageSize returns the pixel dimensions of the named sprite without
// requiring a graphics context. ok is false when no such sprite exists.
func ImageSize(name string) (w, h int, ok bool) {
	return loader.size(name)
}

// MustLoadCourse parses a Tiled course file from the embedded filesystem.
func MustLoadCourse(path string) *Course {
	courseMap, err := tiled.LoadFile(path, tiled.WithFileSystem(courseFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load course %s: %v", path, err))
	}

	course := &Course{
		Name:  path,
		Width: float64(courseMap.Width * courseMap.TileWidth),
	}

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "SkierSpawn":
			for _, o := range og.Objects {
				course.SkierSpawnX = o.X
				course.SkierSpawnY = o.Y
			}
		case "ObstacleSpawn":
			for _, o := range og.Objects {
				category := o.Properties.GetString("category")
				if category == "" {
					continue
				}
				course.ObstacleSpawns = append(course.ObstacleSpawns, ObstacleSpawn{
					X:        o.X,
					Y:        o.Y,
					Category: category,
				})
			}
		}
	}

	return course
}
