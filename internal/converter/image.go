package converter

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/nmalkin/convert-html-to-epub/internal/epub"
)

const defaultJPEGQuality = 85

// ImageOptimizer downscales oversized raster images before they are written
// into the package. It is opt-in: with MaxWidth <= 0 every image passes
// through untouched.
type ImageOptimizer struct {
	MaxWidth    int
	JPEGQuality int
}

// NewImageOptimizer creates an optimizer from the conversion options.
func NewImageOptimizer(opts ConvertOptions) *ImageOptimizer {
	quality := opts.JPEGQuality
	if quality <= 0 {
		quality = defaultJPEGQuality
	}
	if quality > 100 {
		quality = 100
	}

	return &ImageOptimizer{
		MaxWidth:    opts.MaxImageWidth,
		JPEGQuality: quality,
	}
}

// Optimize resizes asset data wider than MaxWidth and re-encodes it in its
// original format, so the filename extension and manifest media type stay
// valid. Images that cannot be decoded, animated GIFs, and formats outside
// jpeg/png/gif are passed through unchanged with a warning string saying
// why. Only an encoding failure returns a non-nil error.
func (o *ImageOptimizer) Optimize(asset epub.ImageAsset) ([]byte, string, error) {
	if o.MaxWidth <= 0 {
		return asset.Data, "", nil
	}

	var format string
	switch asset.MediaType() {
	case "image/jpeg":
		format = "jpeg"
	case "image/png":
		format = "png"
	case "image/gif":
		format = "gif"
	default:
		return asset.Data, "", nil
	}

	if format == "gif" {
		animated, err := isAnimatedGIF(asset.Data)
		if err == nil && animated {
			return asset.Data, "animated gif left unoptimized", nil
		}
	}

	src, _, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return asset.Data, fmt.Sprintf("image decode failed: %v", err), nil
	}
	if src.Bounds().Dx() <= o.MaxWidth {
		return asset.Data, "", nil
	}

	resized := imaging.Resize(src, o.MaxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: o.JPEGQuality})
	case "png":
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		err = encoder.Encode(&buf, resized)
	case "gif":
		err = gif.Encode(&buf, resized, nil)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s encode failed: %w", format, err)
	}

	return buf.Bytes(), "", nil
}

func isAnimatedGIF(data []byte) (bool, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return false, err
	}
	return len(g.Image) > 1, nil
}
