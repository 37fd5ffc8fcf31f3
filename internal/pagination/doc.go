// Package pagination decides which page numbers a paginated navigation control renders.
//
// Two generators are provided:
//
//   - EllipsisPages keeps a fixed window of sibling pages around the current page plus
//     boundary blocks pinned at both ends, collapsing everything else into at most two
//     ellipsis markers. Suited to ten to a hundred pages.
//   - ExponentialPages keeps a contiguous window around the current page and reaches
//     toward the first and last page in power-of-two strides, so any region of a very
//     large range is reachable in O(log n) clicks.
//
// Both are pure functions of (currentPage, totalPages, options). Control is the thin
// stateful shell that owns the current page, guards previous/next at the ends and
// forwards page changes to a callback.
//
//	ctrl, err := pagination.NewControl(5, 100, pagination.EllipsisStrategy{
//		Options: pagination.DefaultEllipsisOptions(),
//	}, func(page int) { log.Printf("page %d", page) })
//	items, err := ctrl.Items() // 1 … 4 5 6 … 100
package pagination
