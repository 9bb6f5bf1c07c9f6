// Package content implements the write side: post creation and deletion,
// with the hashtag and mention index updates the extractor derives from
// the body. Index updates run synchronously inside the operation, one
// atomic update per entity; the hashtag update and the mentioned-user
// update for the same post are independent, not one transaction.
package content

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/apperr"
	"chirp/extract"
	"chirp/models"
)

// Store is the slice of the content index the write path needs.
type Store interface {
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)

	PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	InsertPost(ctx context.Context, p *models.Post) error
	MarkPostDeleted(ctx context.Context, id primitive.ObjectID) (bool, error)
	PushTweetRef(ctx context.Context, userID primitive.ObjectID, ref models.TweetRef) error
	IncReplies(ctx context.Context, postID primitive.ObjectID) error
	AddRetweeter(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveRetweeter(ctx context.Context, postID, userID primitive.ObjectID) error
	AddLiker(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveLiker(ctx context.Context, postID, userID primitive.ObjectID) error

	UpsertHashtag(ctx context.Context, title string, postID primitive.ObjectID) error
	RemoveHashtagRef(ctx context.Context, title string, postID primitive.ObjectID) error
	AppendMention(ctx context.Context, userID, postID primitive.ObjectID) error
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

type CreatePostInput struct {
	Description    string
	Media          []models.Media
	Type           string
	ReferredPostID primitive.ObjectID
}

// CreatePost stores a new post and updates the hashtag and mention
// indexes from its body. Replies bump the parent's repliesCount; retweets
// join the parent's retweetList.
func (s *Service) CreatePost(ctx context.Context, authorID primitive.ObjectID, in CreatePostInput) (primitive.ObjectID, error) {
	if in.Type == "" {
		in.Type = models.TypeTweet
	}
	if !models.ValidPostType(in.Type) {
		return primitive.NilObjectID, apperr.New(apperr.ErrInvalidRequest, "unknown tweet type")
	}
	// A retweet is a bare pointer at the parent; everything else needs a body.
	if in.Type != models.TypeRetweet && in.Description == "" && len(in.Media) == 0 {
		return primitive.NilObjectID, apperr.New(apperr.ErrInvalidRequest, "tweet must have a description or media")
	}

	author, err := s.store.UserByID(ctx, authorID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !author.Visible() {
		return primitive.NilObjectID, apperr.New(apperr.ErrNotFound, "user not found")
	}

	if in.Type != models.TypeTweet {
		if in.ReferredPostID.IsZero() {
			return primitive.NilObjectID, apperr.New(apperr.ErrInvalidRequest, "referred tweet id is required")
		}
		parent, err := s.store.PostByID(ctx, in.ReferredPostID)
		if err != nil {
			return primitive.NilObjectID, err
		}
		if parent.IsDeleted {
			return primitive.NilObjectID, apperr.New(apperr.ErrNotFound, "referred tweet not found")
		}
	}

	post := &models.Post{
		ID:             primitive.NewObjectID(),
		UserID:         authorID,
		Description:    in.Description,
		Media:          in.Media,
		Type:           in.Type,
		ReferredPostID: in.ReferredPostID,
		LikersList:     []primitive.ObjectID{},
		RetweetList:    []primitive.ObjectID{},
		CreatedAt:      s.now().Unix(),
	}

	if err := s.store.InsertPost(ctx, post); err != nil {
		return primitive.NilObjectID, err
	}
	if err := s.store.PushTweetRef(ctx, authorID, models.TweetRef{
		PostID: post.ID,
		Type:   post.Type,
		At:     post.CreatedAt,
	}); err != nil {
		return primitive.NilObjectID, err
	}

	switch in.Type {
	case models.TypeReply:
		if err := s.store.IncReplies(ctx, in.ReferredPostID); err != nil {
			return primitive.NilObjectID, err
		}
	case models.TypeRetweet:
		if err := s.store.AddRetweeter(ctx, in.ReferredPostID, authorID); err != nil {
			return primitive.NilObjectID, err
		}
	}

	if err := s.indexBody(ctx, post); err != nil {
		return primitive.NilObjectID, err
	}
	return post.ID, nil
}

// indexBody applies the extractor's output: one hashtag upsert per
// distinct tag token, one mention append per distinct token whose
// username resolves to a visible user. Unresolved mentions are skipped
// silently.
func (s *Service) indexBody(ctx context.Context, post *models.Post) error {
	for _, tag := range extract.Hashtags(post.Description) {
		if err := s.store.UpsertHashtag(ctx, tag, post.ID); err != nil {
			return err
		}
	}

	for _, username := range extract.Mentions(post.Description) {
		mentioned, err := s.store.UserByUsername(ctx, username)
		if errors.Is(err, apperr.ErrNotFound) {
			log.WithField("username", username).Debug("mention does not resolve, skipping")
			continue
		}
		if err != nil {
			return err
		}
		if err := s.store.AppendMention(ctx, mentioned.ID, post.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeletePost soft-deletes a post and rolls the hashtag index back by the
// inverse of the extraction. Only the author may delete. A second delete
// is NotFound and never decrements a hashtag twice; mention entries are
// left dangling for the read-time filter.
func (s *Service) DeletePost(ctx context.Context, postID, requesterID primitive.ObjectID) error {
	post, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return apperr.New(apperr.ErrForbidden, "only the author can delete a tweet")
	}
	if post.IsDeleted {
		return apperr.New(apperr.ErrNotFound, "tweet not found")
	}

	marked, err := s.store.MarkPostDeleted(ctx, postID)
	if err != nil {
		return err
	}
	if !marked {
		// Lost the race with a concurrent delete; that call owns the
		// index rollback.
		return apperr.New(apperr.ErrNotFound, "tweet not found")
	}

	for _, tag := range extract.Hashtags(post.Description) {
		if err := s.store.RemoveHashtagRef(ctx, tag, post.ID); err != nil {
			return err
		}
	}
	return nil
}

// Like adds the viewer to the post's likersList and the post to the
// viewer's likedTweets.
func (s *Service) Like(ctx context.Context, postID, viewerID primitive.ObjectID) error {
	post, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.IsDeleted {
		return apperr.New(apperr.ErrNotFound, "tweet not found")
	}
	return s.store.AddLiker(ctx, postID, viewerID)
}

func (s *Service) Unlike(ctx context.Context, postID, viewerID primitive.ObjectID) error {
	if _, err := s.store.PostByID(ctx, postID); err != nil {
		return err
	}
	return s.store.RemoveLiker(ctx, postID, viewerID)
}

// Unretweet removes the viewer from the post's retweetList.
func (s *Service) Unretweet(ctx context.Context, postID, viewerID primitive.ObjectID) error {
	if _, err := s.store.PostByID(ctx, postID); err != nil {
		return err
	}
	return s.store.RemoveRetweeter(ctx, postID, viewerID)
}
