package epub

// Document is the result of extracting a single HTML file: the title, the
// rewritten body fragment, and the images discovered inside the body in
// document order.
type Document struct {
	Title  string
	Body   string
	Images []ImageAsset
}

// ImageAsset is one embedded image lifted out of the HTML body. Data is nil
// until the base64 payload has been decoded by DecodeImages.
type ImageAsset struct {
	Filename string // unique within one conversion, e.g. "image_0_3fa9c2d1.png"
	Payload  string // raw base64 payload as found in the data URI
	Data     []byte // decoded bytes, nil before decoding
}

// MediaType returns the MIME type for the asset derived from its filename
// extension. The subtype declared in the original data URI is not consulted.
func (a ImageAsset) MediaType() string {
	return MediaTypeForFilename(a.Filename)
}

// Metadata identifies one generated publication.
type Metadata struct {
	BookID   string // URN-form UUID, shared verbatim by the OPF and the NCX
	Title    string
	Modified string // UTC ISO-8601 with "Z" suffix, per dcterms:modified
}
