package webapp

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - %s</title>
<link rel="stylesheet" href="%s">
</head>
<body>
%s
</body>
</html>
`

// NotFoundDocument renders the 404 page as a complete HTML document.
// The server uses it for 404s that never reach the client-side router.
func NotFoundDocument(title string) []byte {
	page := &NotFoundPage{}

	return []byte(fmt.Sprintf(documentTemplate,
		NotFoundCode,
		html.EscapeString(title),
		StylesheetPath,
		canonicalHTML(page.Render()),
	))
}

// canonicalHTML renders ui with attributes sorted by name.
// go-app keeps attributes in a map, so its own output order varies between calls.
func canonicalHTML(ui app.UI) string {
	raw := app.HTMLString(ui)

	nodes, err := html.ParseFragment(strings.NewReader(raw), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return raw
	}

	var b bytes.Buffer
	for _, n := range nodes {
		sortAttributes(n)
		if err := html.Render(&b, n); err != nil {
			return raw
		}
	}
	return b.String()
}

func sortAttributes(n *html.Node) {
	sort.Slice(n.Attr, func(i, j int) bool {
		return n.Attr[i].Key < n.Attr[j].Key
	})
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sortAttributes(c)
	}
}
