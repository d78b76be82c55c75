package service

import (
	"context"
	"log/slog"
	"time"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/samber/lo"
)

// feedDateLayout is the accepted format for the feed's date filter.
const feedDateLayout = "2006-01-02"

// FeedService composes a user's timeline from the posts of accounts they
// follow.
type FeedService struct {
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
	// strictDate rejects malformed date filters instead of ignoring them.
	strictDate bool
}

// FeedOptions narrows the composed feed. Keyword and Date arrive as raw
// query-string values.
type FeedOptions struct {
	Keyword string
	Date    string
	Limit   int
	Offset  int
}

// NewFeedService returns a new FeedService.
func NewFeedService(followRepo repository.FollowRepository, postRepo repository.PostRepository, strictDate bool) *FeedService {
	return &FeedService{
		followRepo: followRepo,
		postRepo:   postRepo,
		strictDate: strictDate,
	}
}

// ComposeFeed returns posts authored by users the viewer follows, newest
// first, optionally narrowed by keyword and calendar day. A viewer following
// nobody gets an empty feed. A malformed Date is ignored unless strict date
// handling is enabled.
func (s *FeedService) ComposeFeed(ctx context.Context, userID uint, opts FeedOptions) ([]*models.Post, error) {
	start := time.Now()
	defer func() {
		middleware.FeedQueryLatency.Observe(time.Since(start).Seconds())
	}()

	day, err := s.parseDay(ctx, opts.Date)
	if err != nil {
		return nil, err
	}

	authorIDs, err := s.followRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs = lo.Uniq(authorIDs)
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}

	return s.postRepo.Feed(ctx, repository.FeedQuery{
		AuthorIDs: authorIDs,
		Keyword:   opts.Keyword,
		Day:       day,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}, userID)
}

func (s *FeedService) parseDay(ctx context.Context, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(feedDateLayout, raw, time.UTC)
	if err != nil {
		if s.strictDate {
			return nil, models.NewValidationError("date must be formatted as YYYY-MM-DD")
		}
		slog.DebugContext(ctx, "ignoring malformed feed date filter", "date", raw)
		return nil, nil
	}
	return &day, nil
}
