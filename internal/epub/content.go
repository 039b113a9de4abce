package epub

import (
	"fmt"

	"golang.org/x/net/html"
)

// BuildContent renders the content document (content.xhtml). The body
// fragment is injected verbatim: it is trusted to have had its image tags
// rewritten already and receives no further sanitization.
func BuildContent(title, body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="en" lang="en">
  <head>
    <meta charset="UTF-8"/>
    <title>%s</title>
  </head>
  <body>
    %s
  </body>
</html>
`, html.EscapeString(title), body)
}
