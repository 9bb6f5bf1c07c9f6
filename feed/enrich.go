package feed

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/models"
)

// enrichPosts projects ranked posts into the view returned to callers:
// derived counters plus the viewer-relative flags, all computed at read
// time against the joined documents.
func enrichPosts(posts []models.Post, viewerID primitive.ObjectID) []models.PostView {
	views := make([]models.PostView, len(posts))
	for i := range posts {
		views[i] = enrichPost(&posts[i], viewerID)
	}
	return views
}

func enrichPost(p *models.Post, viewerID primitive.ObjectID) models.PostView {
	v := models.PostView{
		ID:          p.ID.Hex(),
		Description: p.Description,
		Media:       p.Media,
		Type:        p.Type,
		CreatedAt:   p.CreatedAt,
		LikesNum:    p.LikeCount(),
		RepliesNum:  p.RepliesCount,
		RepostsNum:  p.RepostCount(),
		IsLiked:     models.ContainsID(p.LikersList, viewerID),
		IsRetweeted: models.ContainsID(p.RetweetList, viewerID),
	}
	if !p.ReferredPostID.IsZero() {
		v.ReferredPostID = p.ReferredPostID.Hex()
	}
	if p.Owner != nil {
		v.Owner = models.OwnerSummary{
			ID:           p.Owner.ID.Hex(),
			Username:     p.Owner.Username,
			Nickname:     p.Owner.Nickname,
			Bio:          p.Owner.Bio,
			ProfileImage: p.Owner.ProfileImage,
			FollowersNum: len(p.Owner.FollowersUsers),
			FollowingNum: len(p.Owner.FollowingUsers),
		}
		v.IsFollowed = models.ContainsID(p.Owner.FollowersUsers, viewerID)
		v.IsFollowingMe = models.ContainsID(p.Owner.FollowingUsers, viewerID)
	}
	return v
}
