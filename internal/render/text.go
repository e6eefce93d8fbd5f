package render

import (
	"io"
	"text/template"
)

var textPage = template.Must(template.New("text").Parse(`=======================================
{{.Header.Name}}
{{.Header.Email}}
{{.Header.City}}, {{.Header.State}}
{{.Header.Mobile}}
{{.Header.WebURL}}

{{range .Sections}}---------------------------------------
{{.Title}}
---------------------------------------
{{range .Lines}}     {{.Dates}}{{.Text}}
{{end}}
{{end}}=======================================

`))

type textRenderer struct{}

func (textRenderer) Render(w io.Writer, doc Document) error {
	return textPage.Execute(w, newPage(doc))
}
