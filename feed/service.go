// Package feed implements the read side of the social backend: candidate
// gathering, visibility filtering, ranking and pagination, and the
// enriched views every endpoint returns. The pipeline runs per request;
// nothing is materialized between calls.
package feed

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/apperr"
	"chirp/models"
)

// Graph resolves users and their social edges.
type Graph interface {
	Relationships(ctx context.Context, viewerID primitive.ObjectID) (models.Relationships, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	SearchUsers(ctx context.Context, word string) ([]models.User, error)
}

// Index is the content index: candidate post streams and the hashtag
// index. Implementations return posts newest first with the author
// joined in as Owner.
type Index interface {
	PostsByAuthor(ctx context.Context, authorID primitive.ObjectID, since int64) ([]models.Post, error)
	PostsByHashtag(ctx context.Context, title string) ([]models.Post, error)
	PostsMentioning(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error)
	PostsLikedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error)
	HashtagsByPopularity(ctx context.Context) ([]models.HashtagSummary, error)
	SearchPosts(ctx context.Context, word string) ([]models.Post, error)
	SearchHashtags(ctx context.Context, word string) ([]models.HashtagSummary, error)
}

// Options carries the feed policy knobs; zero values fall back to the
// production defaults.
type Options struct {
	RecencyWindow     time.Duration
	PageSize          int
	FanoutConcurrency int
}

type Service struct {
	graph Graph
	index Index
	opts  Options

	// now is swappable so tests can pin the recency window.
	now func() time.Time
}

func NewService(graph Graph, index Index, opts Options) *Service {
	if opts.RecencyWindow <= 0 {
		opts.RecencyWindow = 2 * time.Hour
	}
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}
	if opts.FanoutConcurrency < 1 {
		opts.FanoutConcurrency = 8
	}
	return &Service{graph: graph, index: index, opts: opts, now: time.Now}
}

// HomeTimeline builds the viewer's home feed: recent own activity plus
// everything from followed authors, filtered, ranked and paginated.
func (s *Service) HomeTimeline(ctx context.Context, viewerID primitive.ObjectID, page Page) ([]models.PostView, error) {
	rel, err := s.graph.Relationships(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.homeCandidates(ctx, viewerID, rel.Following)
	if err != nil {
		return nil, err
	}

	visible := Visible(candidates, viewerID, rel, FilterOptions{ExcludeReplies: true})
	if len(visible) == 0 {
		return nil, apperr.New(apperr.ErrEmptyResult, "no tweets to show")
	}

	RankPosts(visible)
	return enrichPosts(Paginate(visible, page.normalized(s.opts.PageSize)), viewerID), nil
}

// HashtagFeed returns the posts referencing one hashtag, visible to the
// viewer.
func (s *Service) HashtagFeed(ctx context.Context, title string, viewerID primitive.ObjectID, page Page) ([]models.PostView, error) {
	rel, err := s.graph.Relationships(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.index.PostsByHashtag(ctx, title)
	if err != nil {
		return nil, err
	}

	visible := Visible(posts, viewerID, rel, FilterOptions{ExcludeReplies: true})
	if len(visible) == 0 {
		return nil, apperr.New(apperr.ErrEmptyResult, "no tweets for this hashtag")
	}

	RankPosts(visible)
	return enrichPosts(Paginate(visible, page.normalized(s.opts.PageSize)), viewerID), nil
}

// MentionFeed returns the posts mentioning the viewer. The mention index
// is append-only, so candidates pointing at deleted posts show up here
// and are dropped by the shared filter.
func (s *Service) MentionFeed(ctx context.Context, viewerID primitive.ObjectID, page Page) ([]models.PostView, error) {
	rel, err := s.graph.Relationships(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.index.PostsMentioning(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	visible := Visible(posts, viewerID, rel, FilterOptions{})
	if len(visible) == 0 {
		return nil, apperr.New(apperr.ErrEmptyResult, "no mentions")
	}

	RankPosts(visible)
	return enrichPosts(Paginate(visible, page.normalized(s.opts.PageSize)), viewerID), nil
}

// ProfileFeed returns the target user's own posts as seen by the viewer.
// A block in either direction is reported as *apperr.Blocked, which is
// an explanation, not an error.
func (s *Service) ProfileFeed(ctx context.Context, targetUsername string, viewerID primitive.ObjectID, page Page) ([]models.PostView, error) {
	rel, target, err := s.profileTarget(ctx, targetUsername, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.index.PostsByAuthor(ctx, target.ID, 0)
	if err != nil {
		return nil, err
	}

	visible := Visible(posts, viewerID, rel, FilterOptions{})
	if len(visible) == 0 {
		return nil, apperr.New(apperr.ErrEmptyResult, "this user has no tweets")
	}

	RankPosts(visible)
	return enrichPosts(Paginate(visible, page.normalized(s.opts.PageSize)), viewerID), nil
}

// ProfileLikes returns the posts the target user has liked, as seen by
// the viewer.
func (s *Service) ProfileLikes(ctx context.Context, targetUsername string, viewerID primitive.ObjectID, page Page) ([]models.PostView, error) {
	rel, target, err := s.profileTarget(ctx, targetUsername, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.index.PostsLikedBy(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	visible := Visible(posts, viewerID, rel, FilterOptions{})
	if len(visible) == 0 {
		return nil, apperr.New(apperr.ErrEmptyResult, "this user has no liked tweets")
	}

	RankPosts(visible)
	return enrichPosts(Paginate(visible, page.normalized(s.opts.PageSize)), viewerID), nil
}

func (s *Service) profileTarget(ctx context.Context, targetUsername string, viewerID primitive.ObjectID) (models.Relationships, *models.User, error) {
	rel, err := s.graph.Relationships(ctx, viewerID)
	if err != nil {
		return models.Relationships{}, nil, err
	}

	target, err := s.graph.UserByUsername(ctx, targetUsername)
	if err != nil {
		return models.Relationships{}, nil, err
	}

	if models.ContainsID(rel.Blocking, target.ID) {
		return models.Relationships{}, nil, &apperr.Blocked{ByTarget: false}
	}
	if models.ContainsID(target.BlockingUsers, viewerID) {
		return models.Relationships{}, nil, &apperr.Blocked{ByTarget: true}
	}
	return rel, target, nil
}

// Profile returns the target's account summary as seen by the viewer.
// The same block rules as the profile feeds apply.
func (s *Service) Profile(ctx context.Context, targetUsername string, viewerID primitive.ObjectID) (models.ProfileView, error) {
	rel, target, err := s.profileTarget(ctx, targetUsername, viewerID)
	if err != nil {
		return models.ProfileView{}, err
	}
	return models.ProfileView{
		ID:            target.ID.Hex(),
		Username:      target.Username,
		Nickname:      target.Nickname,
		Bio:           target.Bio,
		ProfileImage:  target.ProfileImage,
		BannerImage:   target.BannerImage,
		Location:      target.Location,
		Website:       target.Website,
		BirthDate:     target.BirthDate,
		JoinedAt:      target.JoinedAt,
		FollowersNum:  len(target.FollowersUsers),
		FollowingNum:  len(target.FollowingUsers),
		TweetsNum:     len(target.TweetList),
		IsFollowed:    models.ContainsID(rel.Following, target.ID),
		IsFollowingMe: models.ContainsID(target.FollowingUsers, viewerID),
		IsMuted:       models.ContainsID(rel.Muting, target.ID),
	}, nil
}

// TrendingHashtags lists hashtags by reference count, most used first.
// An empty store is an empty list, not an error.
func (s *Service) TrendingHashtags(ctx context.Context, page Page) ([]models.HashtagSummary, error) {
	tags, err := s.index.HashtagsByPopularity(ctx)
	if err != nil {
		return nil, err
	}
	return Paginate(tags, page.normalized(s.opts.PageSize)), nil
}
