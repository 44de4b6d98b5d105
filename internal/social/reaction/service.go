package reaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/marquee/internal/platform/apperr"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/dberr"
	"github.com/taibuivan/marquee/pkg/pointer"
)

// Service is the reaction aggregator.
type Service struct {
	ledger      Ledger
	comments    Comments
	tx          Transactor
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

// NewService wires a reaction [Service]. maxAttempts below one falls back to
// [constants.DefaultReactionMaxAttempts].
func NewService(ledger Ledger, comments Comments, tx Transactor, maxAttempts int, logger *slog.Logger) *Service {
	if maxAttempts < 1 {
		maxAttempts = constants.DefaultReactionMaxAttempts
	}
	return &Service{
		ledger:      ledger,
		comments:    comments,
		tx:          tx,
		maxAttempts: maxAttempts,
		backoff:     constants.ReactionRetryBackoff,
		logger:      logger,
	}
}

/*
React applies the user's reaction to a comment and refreshes its counters.

The ownership check, the ledger transition, the recount and the counter patch
share one transaction. A transaction that loses a race with a concurrent
writer is replayed from the start, up to the configured number of attempts.

Returns:
  - *Result: transition performed, caller's resulting reaction and fresh counters
  - error: UNAUTHORIZED, VALIDATION_ERROR, NOT_FOUND, FORBIDDEN on one's own
    comment, SERVICE_UNAVAILABLE once the retries are spent
*/
func (service *Service) React(ctx context.Context, commentID, userID string, kind Kind) (*Result, error) {
	if userID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}
	if !kind.Valid() {
		return nil, validateKind(kind)
	}

	for attempt := 1; ; attempt++ {
		result, err := service.reactOnce(ctx, commentID, userID, kind)
		if err == nil {
			service.logger.InfoContext(ctx, "reaction_applied",
				slog.String("comment_id", commentID),
				slog.String("outcome", string(result.Outcome)),
				slog.Int("attempt", attempt),
			)
			return result, nil
		}

		if !dberr.IsConflict(err) {
			return nil, err
		}

		if attempt >= service.maxAttempts {
			service.logger.WarnContext(ctx, "reaction_retries_exhausted",
				slog.String("comment_id", commentID),
				slog.Int("attempts", attempt),
			)
			return nil, apperr.ServiceUnavailable("Reaction could not be saved, please retry").WithCause(err)
		}

		service.logger.DebugContext(ctx, "reaction_retry",
			slog.String("comment_id", commentID),
			slog.Int("attempt", attempt),
		)

		if err := sleep(ctx, service.backoff*time.Duration(attempt)); err != nil {
			return nil, err
		}
	}
}

func (service *Service) reactOnce(ctx context.Context, commentID, userID string, kind Kind) (*Result, error) {
	var result *Result

	err := service.tx.Do(ctx, func(ctx context.Context) error {
		target, err := service.comments.Get(ctx, commentID)
		if err != nil {
			return err
		}

		if target.AuthorID == userID {
			return apperr.Forbidden("You cannot react to your own comment")
		}

		outcome, err := service.ledger.Apply(ctx, commentID, userID, kind)
		if err != nil {
			return err
		}

		counts, err := service.ledger.CountFor(ctx, commentID)
		if err != nil {
			return err
		}

		if err := service.comments.PatchCounts(ctx, commentID, counts.Like, counts.Dislike); err != nil {
			return err
		}

		result = &Result{
			CommentID:    commentID,
			Outcome:      outcome,
			LikeCount:    counts.Like,
			DislikeCount: counts.Dislike,
		}
		if outcome != ToggledOff {
			result.Reaction = pointer.To(kind)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// MyReactions returns the caller's reactions on a movie's comments.
func (service *Service) MyReactions(ctx context.Context, movieID, userID string) (map[string]Kind, error) {
	if userID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return service.ledger.ByUserOnMovie(ctx, userID, movieID)
}

func validateKind(kind Kind) error {
	_, err := ParseKind(string(kind))
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
