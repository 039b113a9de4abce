package epub

import (
	"encoding/base64"
	"log/slog"
	"path/filepath"
	"strings"
)

// mediaTypes maps a lowercase filename extension (without the dot) to the
// MIME type declared for it in the package manifest.
var mediaTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
	"webp": "image/webp",
}

// fallbackMediaType is used for extensions outside the known table.
const fallbackMediaType = "application/octet-stream"

// MediaTypeForFilename returns the manifest media type for a filename based
// purely on its extension.
func MediaTypeForFilename(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	return fallbackMediaType
}

// DecodeImages decodes the base64 payload of every asset and returns the
// assets that decoded successfully, in their original order.
//
// A payload that fails to decode is logged at Warn level and dropped; the
// rewritten tag referencing it stays in the body as a dangling reference,
// matching the reference behavior rather than substituting a placeholder.
func DecodeImages(assets []ImageAsset, logger *slog.Logger) []ImageAsset {
	if logger == nil {
		logger = slog.Default()
	}

	decoded := make([]ImageAsset, 0, len(assets))
	for _, a := range assets {
		data, err := decodeBase64Padded(a.Payload)
		if err != nil {
			logger.Warn("could not decode base64 image data, skipping",
				"image", a.Filename, "error", err)
			continue
		}
		a.Data = data
		a.Payload = ""
		decoded = append(decoded, a)
	}
	return decoded
}

// decodeBase64Padded decodes s after padding it to a multiple of 4
// characters. HTML sources routinely truncate padding characters.
func decodeBase64Padded(s string) ([]byte, error) {
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(s)
}
