package feed

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/apperr"
	"chirp/models"
)

// Search types accepted by the search operation.
const (
	SearchUser    = "user"
	SearchTweet   = "tweet"
	SearchHashtag = "hashtag"
)

// SearchResult holds the slice matching the requested type; the other
// two stay empty.
type SearchResult struct {
	Users    []models.UserSummary    `json:"users,omitempty"`
	Posts    []models.PostView       `json:"tweets,omitempty"`
	Hashtags []models.HashtagSummary `json:"hashtags,omitempty"`
}

// Search looks up users, tweets or hashtags matching word. Missing or
// unknown type and missing word are InvalidRequest; a search with no
// matches is EmptyResult.
func (s *Service) Search(ctx context.Context, viewerID primitive.ObjectID, typ, word string, page Page) (SearchResult, error) {
	if typ == "" {
		return SearchResult{}, apperr.New(apperr.ErrInvalidRequest,
			"search request must have a type in query one of these values [ user , tweet , hashtag ]")
	}
	if word == "" {
		return SearchResult{}, apperr.New(apperr.ErrInvalidRequest,
			"search request must have a search word in query")
	}

	page = page.normalized(s.opts.PageSize)

	switch typ {
	case SearchUser:
		return s.searchUsers(ctx, word, page)
	case SearchTweet:
		return s.searchPosts(ctx, viewerID, word, page)
	case SearchHashtag:
		return s.searchHashtags(ctx, word, page)
	default:
		return SearchResult{}, apperr.New(apperr.ErrInvalidRequest,
			"only these values [ user , tweet , hashtag ] are allowed in type of search request")
	}
}

func (s *Service) searchUsers(ctx context.Context, word string, page Page) (SearchResult, error) {
	users, err := s.graph.SearchUsers(ctx, word)
	if err != nil {
		return SearchResult{}, err
	}
	if len(users) == 0 {
		return SearchResult{}, apperr.New(apperr.ErrEmptyResult, "there is no result for this search word")
	}

	summaries := make([]models.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = models.UserSummary{
			ID:           u.ID.Hex(),
			Username:     u.Username,
			Nickname:     u.Nickname,
			Bio:          u.Bio,
			ProfileImage: u.ProfileImage,
		}
	}
	return SearchResult{Users: Paginate(summaries, page)}, nil
}

func (s *Service) searchPosts(ctx context.Context, viewerID primitive.ObjectID, word string, page Page) (SearchResult, error) {
	rel, err := s.graph.Relationships(ctx, viewerID)
	if err != nil {
		return SearchResult{}, err
	}

	posts, err := s.index.SearchPosts(ctx, word)
	if err != nil {
		return SearchResult{}, err
	}

	visible := Visible(posts, viewerID, rel, FilterOptions{})
	if len(visible) == 0 {
		return SearchResult{}, apperr.New(apperr.ErrEmptyResult, "there is no result for this search word")
	}

	RankPosts(visible)
	return SearchResult{Posts: enrichPosts(Paginate(visible, page), viewerID)}, nil
}

func (s *Service) searchHashtags(ctx context.Context, word string, page Page) (SearchResult, error) {
	tags, err := s.index.SearchHashtags(ctx, word)
	if err != nil {
		return SearchResult{}, err
	}
	if len(tags) == 0 {
		return SearchResult{}, apperr.New(apperr.ErrEmptyResult, "there is no result for this search word")
	}
	return SearchResult{Hashtags: Paginate(tags, page)}, nil
}
