package feed

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/models"
)

// FilterOptions selects the per-feed visibility variations. Replies are
// excluded from timeline and hashtag feeds but stay visible on profile,
// mention and search reads.
type FilterOptions struct {
	ExcludeReplies bool
}

// Visible applies the shared visibility contract to a candidate set, in
// order: soft-deleted posts, reply exclusion, blocks (both directions),
// mutes (viewer side only), invisible authors. Every read path goes
// through this one function.
func Visible(posts []models.Post, viewerID primitive.ObjectID, rel models.Relationships, opt FilterOptions) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.IsDeleted {
			continue
		}
		if opt.ExcludeReplies && p.Type == models.TypeReply {
			continue
		}
		if models.ContainsID(rel.Blocking, p.UserID) {
			continue
		}
		if p.Owner != nil && models.ContainsID(p.Owner.BlockingUsers, viewerID) {
			continue
		}
		if models.ContainsID(rel.Muting, p.UserID) {
			continue
		}
		if !p.Owner.Visible() {
			continue
		}
		out = append(out, p)
	}
	return out
}
