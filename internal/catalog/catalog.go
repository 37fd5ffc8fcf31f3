package catalog

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

// InstallCLI is the shadcn command used to add a registry component to a project.
const InstallCLI = "npx shadcn@latest add"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Catalog is the read-only set of documented components, in file order.
type Catalog struct {
	components []Component
	index      map[string]int
}

// Section is a category heading and its components.
type Section struct {
	Category   Category
	Components []Component
}

// New indexes components by slug. Callers normally go through Parse, which validates first.
func New(components []Component) *Catalog {
	c := &Catalog{
		components: make([]Component, len(components)),
		index:      make(map[string]int, len(components)),
	}
	copy(c.components, components)
	for i, component := range c.components {
		c.index[component.Slug] = i
	}
	return c
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.components)
}

// List returns every component in catalog order.
func (c *Catalog) List() []Component {
	result := make([]Component, len(c.components))
	copy(result, c.components)
	return result
}

// Get retrieves a component by slug.
func (c *Catalog) Get(slug string) (Component, error) {
	i, ok := c.index[slug]
	if !ok {
		return Component{}, apperrors.NewNotFoundError("component", slug)
	}
	return c.components[i], nil
}

// Lookup resolves a slug or a display name such as "Ellipsis Pagination".
func (c *Catalog) Lookup(query string) (Component, error) {
	if component, err := c.Get(query); err == nil {
		return component, nil
	}
	if component, err := c.Get(Slugify(query)); err == nil {
		return component, nil
	}
	return Component{}, apperrors.NewNotFoundError("component", query)
}

// Categories returns the categories that have at least one component, in sidebar order.
func (c *Catalog) Categories() []Category {
	var result []Category
	for _, section := range c.ByCategory() {
		result = append(result, section.Category)
	}
	return result
}

// ByCategory groups components by category in sidebar order. Empty categories are
// omitted; order within a category follows the catalog.
func (c *Catalog) ByCategory() []Section {
	grouped := make(map[Category][]Component)
	for _, component := range c.components {
		grouped[component.Category] = append(grouped[component.Category], component)
	}

	sections := make([]Section, 0, len(grouped))
	for _, category := range categoryOrder {
		if components := grouped[category]; len(components) > 0 {
			sections = append(sections, Section{Category: category, Components: components})
		}
	}
	return sections
}

// InstallCommand returns the shell command that installs slug from registryURL.
func (c *Catalog) InstallCommand(slug, registryURL string) (string, error) {
	component, err := c.Get(slug)
	if err != nil {
		return "", err
	}
	return component.InstallCommand(registryURL), nil
}

// InstallCommand returns the shell command that installs the component from registryURL.
func (comp Component) InstallCommand(registryURL string) string {
	return fmt.Sprintf("%s %s/r/%s.json", InstallCLI, strings.TrimRight(registryURL, "/"), comp.RegistryName)
}

// Slugify lowercases name and collapses every run of other characters into a hyphen.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
