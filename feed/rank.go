package feed

import (
	"sort"

	"chirp/models"
)

// RankPosts orders posts by the composite descending ranking key:
// creation time, then like count, reply count, repost count. Each
// component breaks ties independently; a newer post always outranks an
// older one regardless of engagement. Like and repost counts come from
// set cardinality, never a stored scalar.
func RankPosts(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := &posts[i], &posts[j]
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt > b.CreatedAt
		}
		if a.LikeCount() != b.LikeCount() {
			return a.LikeCount() > b.LikeCount()
		}
		if a.RepliesCount != b.RepliesCount {
			return a.RepliesCount > b.RepliesCount
		}
		return a.RepostCount() > b.RepostCount()
	})
}

// Page is a 1-indexed pagination request.
type Page struct {
	Number int
	Size   int
}

// normalized applies the defaults: page 1, the configured size.
func (p Page) normalized(defaultSize int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultSize
	}
	return p
}

// Paginate slices items to [(page-1)*size, page*size). A start beyond
// the sequence yields an empty page, not an error; whether an empty
// candidate set is an error is decided before pagination.
func Paginate[T any](items []T, page Page) []T {
	start := (page.Number - 1) * page.Size
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
