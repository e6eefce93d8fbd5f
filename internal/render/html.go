package render

import (
	"html/template"
	"io"
	"strings"
)

// Lines end in CRLF.
var htmlPage = template.Must(template.New("html").Parse(strings.ReplaceAll(`<!doctype html>
<html lang="en-us">
<head>
    <title>{{.Header.Name}} - Resume</title>
</head>
<body>
<p>
{{.Header.Name}}<br/>
{{.Header.Email}}<br/>
{{.Header.City}}, {{.Header.State}}<br/>
{{.Header.Mobile}}<br/>
<a href="{{.Header.WebURL}}">{{.Header.WebURL}}</a>
</p>

{{range .Sections}}<hr/>
<h1>{{.Title}}</h1>
<p>
{{range .Lines}}{{.Dates}}{{.Text}}<br/>
{{end}}</p>

{{end}}</body>
</html>
`, "\n", "\r\n")))

type htmlRenderer struct{}

func (htmlRenderer) Render(w io.Writer, doc Document) error {
	return htmlPage.Execute(w, newPage(doc))
}
