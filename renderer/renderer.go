// Package renderer renders activities, classifications and import reports as
// markdown.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// RenderActivities renders an activity table followed by the net cash flow per currency.
func RenderActivities(a *Activities) string { return renderTemplate("activities.md", a) }

// RenderClassification renders the classifier predicates and the value of one activity.
func RenderClassification(c *Classification) string {
	return renderTemplate("classification.md", c)
}

// RenderImport renders the summary of an import and the list of invalid rows.
func RenderImport(r *Import) string { return renderTemplate("import.md", r) }

// renderTemplate executes a main template, all partials being available to it.
func renderTemplate(mainFile string, data any) string {
	tmpl, err := template.New(mainFile).Funcs(funcs).ParseFS(templates, "templates/*.md")
	if err != nil {
		return fmt.Sprintf("error parsing templates: %v", err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, mainFile, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", mainFile, err)
	}
	return b.String()
}
