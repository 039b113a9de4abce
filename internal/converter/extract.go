package converter

import (
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/nmalkin/convert-html-to-epub/internal/epub"
)

// defaultTitle is used when the document has no title element.
const defaultTitle = "Untitled"

// defaultAltText is used for images without an alt attribute.
const defaultAltText = "image"

var (
	titleRe   = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	bodyRe    = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)
	dataImgRe = regexp.MustCompile(`(?i)<img[^>]+src="data:image/([^;]+);base64,([^"]+)"[^>]*>`)
	altRe     = regexp.MustCompile(`(?i)alt="([^"]*)"`)

	headRe      = regexp.MustCompile(`(?is)<head>.*?</head>`)
	doctypeRe   = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	htmlOpenRe  = regexp.MustCompile(`(?i)<html[^>]*>`)
	htmlCloseRe = regexp.MustCompile(`(?i)</html>`)
)

// ExtractFile reads the HTML document at path and extracts a Document from
// it. The file is decoded as UTF-8 with a single ISO-8859-1 fallback.
func ExtractFile(path string) (epub.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return epub.Document{}, fmt.Errorf("failed to read HTML file: %w", err)
	}
	text, err := decodeText(data)
	if err != nil {
		return epub.Document{}, err
	}
	return Extract(text), nil
}

// Extract pulls the title, the body fragment, and the embedded images out of
// raw HTML text. It works on tag-level patterns, never a parsed tree, and
// degrades rather than failing: a missing title yields a placeholder, a
// missing body element yields the whole document with the head block and html
// framing stripped, and malformed data URIs are left untouched.
//
// Image payloads are returned undecoded; callers hand them to
// epub.DecodeImages before building the package.
func Extract(content string) epub.Document {
	doc := epub.Document{Title: defaultTitle}

	if m := titleRe.FindStringSubmatch(content); m != nil {
		doc.Title = strings.TrimSpace(html.UnescapeString(m[1]))
	}

	bodyMatch := bodyRe.FindStringSubmatch(content)
	body := content
	if bodyMatch != nil {
		body = strings.TrimSpace(bodyMatch[1])
	}

	doc.Images, body = rewriteImages(body)

	// No body element: strip the head block and the html framing by pattern.
	if bodyMatch == nil {
		body = headRe.ReplaceAllString(body, "")
		body = doctypeRe.ReplaceAllString(body, "")
		body = htmlOpenRe.ReplaceAllString(body, "")
		body = htmlCloseRe.ReplaceAllString(body, "")
	}

	doc.Body = strings.TrimSpace(body)
	return doc
}

// rewriteImages discovers base64 data URI images in body, assigns each a
// unique filename, and rewrites the tags to reference images/<filename> with
// only src and alt attributes. When the identical original tag text occurs
// more than once, the first-seen mapping is applied to every occurrence.
func rewriteImages(body string) ([]epub.ImageAsset, string) {
	var assets []epub.ImageAsset
	replacements := make(map[string]string)
	var order []string

	for i, m := range dataImgRe.FindAllStringSubmatch(body, -1) {
		original := m[0]
		if _, seen := replacements[original]; seen {
			continue
		}

		name := imageFilename(i, strings.ToLower(m[1]), m[2])
		assets = append(assets, epub.ImageAsset{
			Filename: name,
			Payload:  m[2],
		})

		altText := defaultAltText
		if am := altRe.FindStringSubmatch(original); am != nil {
			altText = html.EscapeString(am[1])
		}

		replacements[original] = fmt.Sprintf(`<img src="images/%s" alt="%s"/>`, name, altText)
		order = append(order, original)
	}

	for _, original := range order {
		body = strings.ReplaceAll(body, original, replacements[original])
	}
	return assets, body
}

// imageFilename builds a filename unique within one conversion from the
// discovery index, a short payload-derived suffix, and the extension mapped
// from the declared data URI subtype. The monotonic index alone guarantees
// uniqueness; deriving the suffix from the payload instead of a random UUID
// keeps extraction deterministic, so identical input yields byte-identical
// output.
func imageFilename(index int, subtype, payload string) string {
	var ext string
	switch subtype {
	case "jpeg":
		ext = "jpg"
	case "svg+xml":
		ext = "svg"
	case "png", "gif", "bmp", "webp":
		ext = subtype
	default:
		ext = "img"
	}

	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(payload))
	return fmt.Sprintf("image_%d_%s.%s", index, hex.EncodeToString(u[:4]), ext)
}
