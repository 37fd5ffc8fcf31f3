package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/showroom/internal/config"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

//go:embed components.yaml
var embeddedCatalog []byte

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse("components.yaml", embeddedCatalog)
}

// LoadFile reads a catalog override from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Load returns the override at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a catalog document.
func Parse(path string, data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewParseError(path, config.ExtractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return New(file.Components), nil
}

// Validate runs schema validation, then the cross-field checks the schema cannot express.
func Validate(file *File) error {
	if err := config.GetValidator().Struct(file); err != nil {
		return config.ConvertValidationError(err)
	}

	seen := make(map[string]struct{}, len(file.Components))
	for i, component := range file.Components {
		if _, dup := seen[component.Slug]; dup {
			return apperrors.NewValidationError(
				fmt.Sprintf("components[%d].slug", i),
				fmt.Sprintf("duplicate slug %q", component.Slug),
				nil,
			)
		}
		seen[component.Slug] = struct{}{}

		if !component.Live() && len(component.Demos) > 0 {
			return apperrors.NewValidationError(
				fmt.Sprintf("components[%d].demos", i),
				"demos require a widget",
				nil,
			)
		}

		for j, demo := range component.Demos {
			if demo.CurrentPage > demo.TotalPages {
				return apperrors.NewValidationError(
					fmt.Sprintf("components[%d].demos[%d].current_page", i, j),
					fmt.Sprintf("current page %d exceeds total pages %d", demo.CurrentPage, demo.TotalPages),
					nil,
				)
			}
		}
	}

	return nil
}
