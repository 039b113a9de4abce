package converter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nmalkin/convert-html-to-epub/internal/epub"
)

// ConvertOptions holds options for the conversion pipeline.
type ConvertOptions struct {
	InputPath  string
	OutputPath string

	// MaxImageWidth enables image optimization when > 0: raster images wider
	// than this are downscaled before packaging.
	MaxImageWidth int
	// JPEGQuality is the re-encode quality used by the optimizer.
	JPEGQuality int

	Logger *slog.Logger
}

// Pipeline orchestrates the HTML to EPUB conversion.
type Pipeline struct {
	Options ConvertOptions
	logger  *slog.Logger
}

// NewPipeline creates a new conversion pipeline.
func NewPipeline(opts ConvertOptions) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Options: opts, logger: logger}
}

// Convert executes the conversion pipeline: extract the document, decode the
// embedded images, and assemble the archive at the output path.
//
// A base64 payload that fails to decode drops only that image; every other
// failure aborts the conversion.
func (p *Pipeline) Convert() error {
	doc, err := ExtractFile(p.Options.InputPath)
	if err != nil {
		return err
	}

	doc.Images = epub.DecodeImages(doc.Images, p.logger)

	if err := p.optimizeImages(&doc); err != nil {
		return err
	}

	meta := epub.Metadata{
		BookID:   uuid.New().URN(),
		Title:    doc.Title,
		Modified: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}

	if err := epub.Write(doc, meta, p.Options.OutputPath); err != nil {
		return fmt.Errorf("failed to assemble EPUB: %w", err)
	}

	p.logger.Info("EPUB file created",
		"output", p.Options.OutputPath,
		"title", meta.Title,
		"images", len(doc.Images))
	return nil
}

// optimizeImages runs the opt-in optimizer over the decoded images.
func (p *Pipeline) optimizeImages(doc *epub.Document) error {
	if p.Options.MaxImageWidth <= 0 {
		return nil
	}

	optimizer := NewImageOptimizer(p.Options)
	for i, img := range doc.Images {
		data, warning, err := optimizer.Optimize(img)
		if err != nil {
			return fmt.Errorf("failed to optimize image %s: %w", img.Filename, err)
		}
		if warning != "" {
			p.logger.Warn(warning, "image", img.Filename)
		}
		doc.Images[i].Data = data
	}
	return nil
}
