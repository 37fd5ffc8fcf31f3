package config

import (
	"github.com/alexisbeaulieu97/showroom/internal/pagination"
)

// Config is the showroom settings document.
type Config struct {
	Theme       string             `yaml:"theme" validate:"required,oneof=light dark"`
	LogLevel    string             `yaml:"log_level" validate:"required,log_level"`
	RegistryURL string             `yaml:"registry_url" validate:"required,url"`
	Catalog     string             `yaml:"catalog,omitempty" validate:"omitempty,catalog_path"`
	Pagination  PaginationSettings `yaml:"pagination"`
	Site        SiteSettings       `yaml:"site"`
}

// PaginationSettings holds the defaults applied to demos that leave a count unset.
type PaginationSettings struct {
	SiblingCount            int `yaml:"sibling_count" validate:"min=0,max=10"`
	BoundaryCount           int `yaml:"boundary_count" validate:"min=0,max=10"`
	ExponentialSiblingCount int `yaml:"exponential_sibling_count" validate:"min=0,max=10"`
}

// SiteSettings configures the static documentation site.
type SiteSettings struct {
	Title    string `yaml:"title" validate:"required,max=100"`
	PageSize int    `yaml:"page_size" validate:"min=1,max=100"`
}

// Default returns the settings used when no configuration file exists.
func Default() Config {
	ellipsis := pagination.DefaultEllipsisOptions()
	exponential := pagination.DefaultExponentialOptions()

	return Config{
		Theme:       "dark",
		LogLevel:    "info",
		RegistryURL: "https://imaimai-ui.vercel.app",
		Pagination: PaginationSettings{
			SiblingCount:            ellipsis.SiblingCount,
			BoundaryCount:           ellipsis.BoundaryCount,
			ExponentialSiblingCount: exponential.SiblingCount,
		},
		Site: SiteSettings{
			Title:    "showroom",
			PageSize: 4,
		},
	}
}

// EllipsisOptions converts the settings into generator options.
func (p PaginationSettings) EllipsisOptions() pagination.EllipsisOptions {
	return pagination.EllipsisOptions{
		SiblingCount:  p.SiblingCount,
		BoundaryCount: p.BoundaryCount,
	}
}

// ExponentialOptions converts the settings into generator options.
func (p PaginationSettings) ExponentialOptions() pagination.ExponentialOptions {
	return pagination.ExponentialOptions{SiblingCount: p.ExponentialSiblingCount}
}
