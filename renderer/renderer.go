// Package renderer turns replay results into markdown reports.
//
// Reports are assembled from embedded templates: an assembly template per
// report plus the partials it pulls in. The data types in this package are
// plain view models, already formatted, so templates stay free of logic.
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

// RenderSummary renders the net-worth summary report to markdown.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title":    "summary_title.md",
		"summary_accounts": "summary_accounts.md",
		"summary_total":    "summary_total.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderAccounts renders the account listing to markdown.
func RenderAccounts(l *AccountList) string {
	partials := map[string]string{
		"accounts_rows": "accounts_rows.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, l)
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
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
