package epub

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// BuildOPF renders the package document (content.opf). The manifest lists the
// content document, the EPUB 3 navigation document, the legacy NCX, and one
// item per retained image; the spine holds the single content document and
// links the NCX through the toc attribute.
func BuildOPF(meta Metadata, images []ImageAsset) string {
	var items strings.Builder
	for i, img := range images {
		// Manifest IDs must start with a letter or underscore.
		fmt.Fprintf(&items, "    <item id=\"img_%d\" href=\"images/%s\" media-type=\"%s\"/>\n",
			i, img.Filename, img.MediaType())
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="BookId" prefix="rendition: http://www.idpf.org/vocab/rendition/#">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="BookId">%s</dc:identifier>
    <dc:title>%s</dc:title>
    <dc:language>en</dc:language>
    <meta property="dcterms:modified">%s</meta>
    <meta property="rendition:layout">reflowable</meta>
    <meta property="rendition:orientation">auto</meta>
    <meta property="rendition:spread">auto</meta>
  </metadata>
  <manifest>
    <item id="content" href="content.xhtml" media-type="application/xhtml+xml"/>
    <item id="toc" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
%s  </manifest>
  <spine toc="ncx">
    <itemref idref="content"/>
  </spine>
</package>
`, meta.BookID, html.EscapeString(meta.Title), meta.Modified, items.String())
}
