package feed

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"chirp/models"
)

// homeCandidates gathers the two home timeline streams: the viewer's own
// posts inside the recency window, then all posts of every followed
// author. Per-author lookups run concurrently; the group wait is the
// barrier before filtering and ranking. Any failed fetch fails the whole
// request; there is no partial-result degradation.
//
// The streams are concatenated without deduplicating post ids: a viewer's
// own post retweeted by a followed account appears once per stream.
func (s *Service) homeCandidates(ctx context.Context, viewerID primitive.ObjectID, following []primitive.ObjectID) ([]models.Post, error) {
	since := s.now().Add(-s.opts.RecencyWindow).Unix()
	own, err := s.index.PostsByAuthor(ctx, viewerID, since)
	if err != nil {
		return nil, err
	}

	followed := make([][]models.Post, len(following))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FanoutConcurrency)
	for i, authorID := range following {
		i, authorID := i, authorID
		g.Go(func() error {
			posts, err := s.index.PostsByAuthor(gctx, authorID, 0)
			if err != nil {
				return err
			}
			followed[i] = posts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.Post, 0, len(own))
	out = append(out, own...)
	for _, posts := range followed {
		out = append(out, posts...)
	}
	return out, nil
}
