package queries

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GetAverageRatingQueryHandler computes rating averages with a cache in
// front of the database. The cache entry is dropped whenever a new rating
// is written, so a hit is at most TTL-stale under lost invalidations. A
// cache outage degrades to plain database reads.
type GetAverageRatingQueryHandler struct {
	db     *gorm.DB
	cache  ports.RatingCache
	logger *slog.Logger
}

// NewGetAverageRatingQueryHandler creates a handler for average rating
// reads. The cache may be nil when no cache is configured.
func NewGetAverageRatingQueryHandler(
	db *gorm.DB,
	cache ports.RatingCache,
	logger *slog.Logger,
) GetAverageRatingQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetAverageRatingQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle returns the subject's average score, 0 when unrated.
func (h GetAverageRatingQueryHandler) Handle(
	ctx context.Context,
	query GetAverageRatingQuery,
) (GetAverageRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAverageRatingQueryResponse{}, err
	}

	response := GetAverageRatingQueryResponse{
		SubjectID: query.SubjectID(),
		Role:      query.Role(),
	}

	if h.cache != nil {
		avg, found, err := h.cache.GetAverage(ctx, query.SubjectID(), query.Role())
		if err != nil {
			h.logger.Warn("rating cache read failed",
				slog.String("subject_id", query.SubjectID().String()),
				slog.Any("error", err),
			)
		} else if found {
			response.Average = avg
			return response, nil
		}
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(score), 0)
		FROM ratings
		WHERE subject_id = ? AND role = ?
	`, query.SubjectID().Bytes(), query.Role().String()).Row()

	if err := row.Scan(&response.Average); err != nil {
		return GetAverageRatingQueryResponse{}, err
	}

	if h.cache != nil {
		if err := h.cache.SetAverage(ctx, query.SubjectID(), query.Role(), response.Average); err != nil {
			h.logger.Warn("rating cache write failed",
				slog.String("subject_id", query.SubjectID().String()),
				slog.Any("error", err),
			)
		}
	}

	return response, nil
}
