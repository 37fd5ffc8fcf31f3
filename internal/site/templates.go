package site

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type templates struct {
	index     *template.Template
	component *template.Template
}

func parseTemplates() (templates, error) {
	index, err := template.ParseFS(templateFS, "templates/layout.tmpl", "templates/nav.tmpl", "templates/index.tmpl")
	if err != nil {
		return templates{}, fmt.Errorf("parse index templates: %w", err)
	}
	component, err := template.ParseFS(templateFS, "templates/layout.tmpl", "templates/nav.tmpl", "templates/component.tmpl")
	if err != nil {
		return templates{}, fmt.Errorf("parse component templates: %w", err)
	}
	return templates{index: index, component: component}, nil
}
