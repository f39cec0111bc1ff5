// Package renderer turns domain reports into markdown strings. Each report
// has a view type that carries display-ready values (Money, Percent, Date)
// and a render function backed by embedded text/template files, so the
// report layout can be changed without touching Go code.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderSummary renders the asset summary view to a markdown string.
func RenderSummary(v *Summary) string {
	partials := map[string]string{
		"summary_title":    "summary_title.md",
		"summary_assets":   "summary_assets.md",
		"summary_deposits": "summary_deposits.md",
	}
	return renderTemplate("summary", "summary.md", partials, v)
}

// RenderYearly renders a yearly aggregate view to a markdown string.
func RenderYearly(v *Yearly) string {
	partials := map[string]string{
		"yearly_title":  "yearly_title.md",
		"yearly_months": "yearly_months.md",
	}
	return renderTemplate("yearly", "yearly.md", partials, v)
}

// RenderEntries renders a flat entry listing (expenses, savings, dividends)
// to a markdown string.
func RenderEntries(v *Entries) string {
	return renderTemplate("entries", "entries.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
