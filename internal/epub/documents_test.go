package epub

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// TestBuildContent tests the content document shell and verbatim body
// injection.
func TestBuildContent(t *testing.T) {
	body := `<p>Hi</p><img src="images/image_0_aabbccdd.png" alt="image"/>`
	content := BuildContent("A & B", body)

	if !strings.HasPrefix(content, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("content document should start with the XML declaration")
	}
	if !strings.Contains(content, `<meta charset="UTF-8"/>`) {
		t.Error("content document should declare UTF-8")
	}
	if !strings.Contains(content, "<title>A &amp; B</title>") {
		t.Errorf("title should be escaped, got:\n%s", content)
	}
	if !strings.Contains(content, body) {
		t.Error("body fragment must be injected verbatim")
	}

	// Escaping must round-trip: unescaping the title recovers the original.
	if html.UnescapeString("A &amp; B") != "A & B" {
		t.Error("escaped title does not unescape to the original")
	}
}

// TestBuildNav tests the navigation document.
func TestBuildNav(t *testing.T) {
	content := BuildNav("My <Book>")

	if !strings.Contains(content, `epub:type="toc"`) {
		t.Error("nav document should contain a toc nav")
	}
	if !strings.Contains(content, `<li><a href="content.xhtml">Content</a></li>`) {
		t.Error("toc should link to the content document")
	}
	if !strings.Contains(content, `epub:type="landmarks"`) {
		t.Error("nav document should contain a landmarks nav")
	}
	if !strings.Contains(content, `epub:type="bodymatter"`) {
		t.Error("landmarks should contain a bodymatter entry")
	}
	if !strings.Contains(content, "My &lt;Book&gt;") {
		t.Errorf("title should be escaped, got:\n%s", content)
	}
}

// TestBuildNCX tests the legacy TOC document.
func TestBuildNCX(t *testing.T) {
	content := BuildNCX(testMeta)

	if !strings.Contains(content, `<meta name="dtb:uid" content="`+testMeta.BookID+`"/>`) {
		t.Errorf("dtb:uid should carry the book identifier, got:\n%s", content)
	}
	if !strings.Contains(content, "A &amp; B") {
		t.Error("docTitle should carry the escaped title")
	}
	if !strings.Contains(content, `<content src="content.xhtml"/>`) {
		t.Error("navPoint should reference the content document")
	}
}

// TestIdentifierSharedBetweenOPFAndNCX tests the correlation invariant: the
// identifier string appears verbatim in both documents.
func TestIdentifierSharedBetweenOPFAndNCX(t *testing.T) {
	opf := BuildOPF(testMeta, nil)
	ncx := BuildNCX(testMeta)

	if !strings.Contains(opf, ">"+testMeta.BookID+"<") {
		t.Error("OPF does not contain the identifier verbatim")
	}
	if !strings.Contains(ncx, `content="`+testMeta.BookID+`"`) {
		t.Error("NCX does not contain the identifier verbatim")
	}
}
