package render

import (
	"chat-stats/domain"
	"chat-stats/errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

type Renderer struct {
	log    *slog.Logger
	config Config
}

func NewRenderer(log *slog.Logger, config Config) *Renderer {
	return &Renderer{log: log, config: config}
}

// Render lays out the whitespace separated words of corpus and draws them.
// Every failure is reported as an *errors.RenderError.
func (r *Renderer) Render(corpus string) (*image.RGBA, Layout, error) {
	if err := r.config.Validate(); err != nil {
		return nil, Layout{}, &errors.RenderError{Err: err}
	}
	frequencies := domain.CountWords(strings.Fields(corpus))
	if len(frequencies) == 0 {
		return nil, Layout{}, &errors.RenderError{Err: errors.ErrEmptyCorpus}
	}

	f, err := loadFont(r.config.FontPath)
	if err != nil {
		return nil, Layout{}, &errors.RenderError{Path: r.config.FontPath, Err: err}
	}
	faces := newFaceCache(f)
	defer faces.Close()

	layout, err := r.layout(frequencies, faces)
	if err != nil {
		return nil, Layout{}, &errors.RenderError{Err: err}
	}

	background, _ := ParseColor(r.config.BackgroundColor)
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, p := range layout.Placements {
		face, err := faces.face(p.FontSize)
		if err != nil {
			return nil, Layout{}, &errors.RenderError{Err: err}
		}
		if missing := missingGlyphs(face, p.Word); len(missing) > 0 {
			r.log.Warn("Font has no glyph for some characters", "word", p.Word, "missing", string(missing), "font", r.config.FontPath)
		}
		d := &font.Drawer{Dst: img, Src: image.NewUniform(p.Color), Face: face, Dot: p.dot}
		d.DrawString(p.Word)
	}

	r.log.Debug("Word cloud laid out",
		"distinct_words", len(frequencies),
		"placed", len(layout.Placements),
		"skipped", len(layout.Skipped))
	return img, layout, nil
}

// RenderToDir renders corpus into outputDir/wordcloud.png, replacing any
// previous file. Nothing is left in outputDir when rendering fails.
func (r *Renderer) RenderToDir(corpus, outputDir string) (string, Layout, error) {
	if err := checkOutputDir(outputDir); err != nil {
		return "", Layout{}, &errors.RenderError{Path: outputDir, Err: err}
	}

	img, layout, err := r.Render(corpus)
	if err != nil {
		return "", Layout{}, err
	}

	path, err := writePNG(outputDir, img)
	if err != nil {
		return "", Layout{}, &errors.RenderError{Path: outputDir, Err: err}
	}
	r.log.Info("Word cloud saved", "path", path, "width", r.config.Width, "height", r.config.Height)
	return path, layout, nil
}

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errors.ErrOutputDirMissing, dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errors.ErrOutputNotDir, dir)
	}
	return nil
}

// writePNG encodes into a temporary file next to the target and renames it
// once complete, so a failed write never leaves a truncated image.
func writePNG(dir string, img image.Image) (path string, err error) {
	tmp, err := os.CreateTemp(dir, ".wordcloud-*.tmp")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = png.Encode(tmp, img); err != nil {
		return "", err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}

	path = filepath.Join(dir, OutputFilename)
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}
