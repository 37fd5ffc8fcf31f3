package pagination

import "sort"

// pageSet accumulates unique page numbers and yields them in ascending order.
type pageSet struct {
	seen map[int]struct{}
}

func newPageSet(capacity int) *pageSet {
	return &pageSet{seen: make(map[int]struct{}, capacity)}
}

func (s *pageSet) add(page int) {
	s.seen[page] = struct{}{}
}

func (s *pageSet) addRange(from, to int) {
	for n := 0; n <= to-from; n++ {
		s.add(from + n)
	}
}

func (s *pageSet) sorted() []int {
	pages := make([]int, 0, len(s.seen))
	for page := range s.seen {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages
}
