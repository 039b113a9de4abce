package epub

import (
	"fmt"

	"golang.org/x/net/html"
)

// BuildNav renders the EPUB 3 navigation document (nav.xhtml): a single-entry
// table of contents pointing at the content document, plus a landmarks nav
// with one bodymatter entry.
func BuildNav(title string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="en" lang="en">
<head>
  <meta charset="UTF-8"/>
  <title>Table of Contents</title>
</head>
<body>
  <nav epub:type="toc" id="toc">
    <h1>%s</h1>
    <ol>
      <li><a href="content.xhtml">Content</a></li>
    </ol>
  </nav>
  <nav epub:type="landmarks" hidden="">
    <h2>Guide</h2>
    <ol>
      <li><a epub:type="bodymatter" href="content.xhtml">Content</a></li>
    </ol>
  </nav>
</body>
</html>
`, html.EscapeString(title))
}
