package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the variants of Item.
type Kind int

const (
	KindPage Kind = iota
	KindEllipsis
)

// EllipsisGlyph is the text rendered in place of an elided run of pages.
const EllipsisGlyph = "…"

// String returns the lowercase name used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// Item is one entry of a rendered page sequence: either a clickable page number or a
// non-interactive ellipsis marker. ID only disambiguates ellipses within one sequence.
type Item struct {
	Kind  Kind
	Value int
	ID    string
}

// Page returns a page item.
func Page(value int) Item {
	return Item{Kind: KindPage, Value: value}
}

// Ellipsis returns an ellipsis marker with the given id.
func Ellipsis(id string) Item {
	return Item{Kind: KindEllipsis, ID: id}
}

// IsPage reports whether the item is a page number.
func (i Item) IsPage() bool {
	return i.Kind == KindPage
}

// IsEllipsis reports whether the item is an ellipsis marker.
func (i Item) IsEllipsis() bool {
	return i.Kind == KindEllipsis
}

// Key returns a stable identifier usable as a render key.
func (i Item) Key() string {
	if i.IsEllipsis() {
		return "ellipsis-" + i.ID
	}
	return "page-" + strconv.Itoa(i.Value)
}

func (i Item) String() string {
	if i.IsEllipsis() {
		return EllipsisGlyph
	}
	return strconv.Itoa(i.Value)
}

type itemJSON struct {
	Type  string `json:"type"`
	Value int    `json:"value,omitempty"`
	ID    string `json:"id,omitempty"`
}

// MarshalJSON encodes the item as {"type":"page","value":n} or {"type":"ellipsis","id":s}.
func (i Item) MarshalJSON() ([]byte, error) {
	payload := itemJSON{Type: i.Kind.String()}
	if i.IsEllipsis() {
		payload.ID = i.ID
	} else {
		payload.Value = i.Value
	}
	return json.Marshal(payload)
}

// UnmarshalJSON decodes the format produced by MarshalJSON.
func (i *Item) UnmarshalJSON(data []byte) error {
	var payload itemJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	switch payload.Type {
	case "page":
		*i = Page(payload.Value)
	case "ellipsis":
		*i = Ellipsis(payload.ID)
	default:
		return fmt.Errorf("unknown page item type %q", payload.Type)
	}
	return nil
}

// Values returns the page numbers of items in order, dropping ellipsis markers.
func Values(items []Item) []int {
	values := make([]int, 0, len(items))
	for _, item := range items {
		if item.IsPage() {
			values = append(values, item.Value)
		}
	}
	return values
}

// ItemsFromPages converts an ordered page list into render items. When markGaps is set an
// ellipsis is inserted between every pair of non-adjacent pages.
func ItemsFromPages(pages []int, markGaps bool) []Item {
	items := make([]Item, 0, len(pages)*2)
	for i, page := range pages {
		if markGaps && i > 0 && page-pages[i-1] > 1 {
			items = append(items, Ellipsis("gap-"+strconv.Itoa(i)))
		}
		items = append(items, Page(page))
	}
	return items
}
