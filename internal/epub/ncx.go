package epub

import (
	"fmt"

	"golang.org/x/net/html"
)

// BuildNCX renders the legacy NCX table of contents (toc.ncx), kept for
// compatibility with EPUB 2 reading systems. The dtb:uid meta value must be
// byte-identical to the dc:identifier in the package document so readers can
// correlate the two files.
func BuildNCX(meta Metadata) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE ncx PUBLIC "-//NISO//DTD ncx 2005-1//EN"
 "http://www.daisy.org/z3986/2005/ncx-2005-1.dtd">
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1" xml:lang="en">
  <head>
    <meta name="dtb:uid" content="%s"/>
    <meta name="dtb:depth" content="1"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle>
    <text>%s</text>
  </docTitle>
  <navMap>
    <navPoint id="navPoint-1" playOrder="1">
      <navLabel>
        <text>Content</text>
      </navLabel>
      <content src="content.xhtml"/>
    </navPoint>
  </navMap>
</ncx>
`, meta.BookID, html.EscapeString(meta.Title))
}
