package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/showroom/internal/pagination"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

// Category groups components in the sidebar and on the site index.
type Category string

const (
	CategoryForm        Category = "form"
	CategoryLayout      Category = "layout"
	CategoryDataDisplay Category = "data-display"
	CategoryFeedback    Category = "feedback"
)

// categoryOrder is the display order of the sidebar sections.
var categoryOrder = []Category{CategoryForm, CategoryLayout, CategoryDataDisplay, CategoryFeedback}

// Title returns the display heading of the category.
func (c Category) Title() string {
	switch c {
	case CategoryForm:
		return "Form"
	case CategoryLayout:
		return "Layout"
	case CategoryDataDisplay:
		return "Data Display"
	case CategoryFeedback:
		return "Feedback"
	default:
		return string(c)
	}
}

// Component is one documented widget.
type Component struct {
	Slug         string   `yaml:"slug" json:"slug" validate:"required,slug"`
	Name         string   `yaml:"name" json:"name" validate:"required"`
	Category     Category `yaml:"category" json:"category" validate:"required,oneof=form layout data-display feedback"`
	Description  string   `yaml:"description" json:"description" validate:"required"`
	RegistryName string   `yaml:"registry_name" json:"registry_name" validate:"required,slug"`
	// Widget names the pagination strategy driving the live preview; empty means the
	// component has no terminal rendition.
	Widget               string   `yaml:"widget,omitempty" json:"widget,omitempty" validate:"omitempty,oneof=ellipsis exponential"`
	CodeLanguage         string   `yaml:"code_language,omitempty" json:"code_language,omitempty"`
	CodeExample          string   `yaml:"code_example" json:"code_example"`
	Props                []Prop   `yaml:"props" json:"props" validate:"dive"`
	Dependencies         []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	RegistryDependencies []string `yaml:"registry_dependencies,omitempty" json:"registry_dependencies,omitempty"`
	Demos                []Demo   `yaml:"demos,omitempty" json:"demos,omitempty" validate:"dive"`
}

// Live reports whether the component has an interactive preview.
func (c Component) Live() bool {
	return c.Widget != ""
}

// Prop documents one property of a component.
type Prop struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Type        string `yaml:"type" json:"type" validate:"required"`
	Required    bool   `yaml:"required" json:"required"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
	Description string `yaml:"description" json:"description"`
}

// Demo is one preview configuration. Nil counts fall back to Defaults.
type Demo struct {
	Title         string `yaml:"title" json:"title" validate:"required"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	CurrentPage   int    `yaml:"current_page" json:"current_page" validate:"min=1"`
	TotalPages    int    `yaml:"total_pages" json:"total_pages" validate:"min=1"`
	SiblingCount  *int   `yaml:"sibling_count,omitempty" json:"sibling_count,omitempty" validate:"omitempty,min=0"`
	BoundaryCount *int   `yaml:"boundary_count,omitempty" json:"boundary_count,omitempty" validate:"omitempty,min=0"`
	MarkGaps      bool   `yaml:"mark_gaps,omitempty" json:"mark_gaps,omitempty"`
}

// Defaults supplies the counts a demo leaves unset.
type Defaults struct {
	Ellipsis    pagination.EllipsisOptions
	Exponential pagination.ExponentialOptions
}

// DefaultOptions returns the generator defaults.
func DefaultOptions() Defaults {
	return Defaults{
		Ellipsis:    pagination.DefaultEllipsisOptions(),
		Exponential: pagination.DefaultExponentialOptions(),
	}
}

// Strategy builds the generator for this demo of a widget.
func (d Demo) Strategy(widget string, defaults Defaults) (pagination.Strategy, error) {
	switch widget {
	case pagination.StrategyEllipsis:
		opts := defaults.Ellipsis
		if d.SiblingCount != nil {
			opts.SiblingCount = *d.SiblingCount
		}
		if d.BoundaryCount != nil {
			opts.BoundaryCount = *d.BoundaryCount
		}
		return pagination.EllipsisStrategy{Options: opts}, nil
	case pagination.StrategyExponential:
		opts := defaults.Exponential
		if d.SiblingCount != nil {
			opts.SiblingCount = *d.SiblingCount
		}
		return pagination.ExponentialStrategy{Options: opts, MarkGaps: d.MarkGaps}, nil
	default:
		return nil, apperrors.NewValidationError("widget", fmt.Sprintf("unknown widget %q", widget), nil)
	}
}

// Control builds a live control positioned at the demo's starting page.
func (d Demo) Control(widget string, defaults Defaults, onChange func(page int)) (*pagination.Control, error) {
	strategy, err := d.Strategy(widget, defaults)
	if err != nil {
		return nil, err
	}
	return pagination.NewControl(d.CurrentPage, d.TotalPages, strategy, onChange)
}

// File is the on-disk catalog document.
type File struct {
	Version    int         `yaml:"version" validate:"eq=1"`
	Components []Component `yaml:"components" validate:"required,min=1,dive"`
}
