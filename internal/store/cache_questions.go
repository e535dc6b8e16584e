package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/pmylund/go-cache"
)

// cachedFormRepository serves question lists from memory. Entries are keyed
// by form ID and dropped on every SaveForm for that form, so a republish is
// visible to the next reader.
type cachedFormRepository struct {
	FormRepository
	questions *cache.Cache
}

// NewCachedFormRepository wraps next with an in-memory question cache. A
// non-positive ttl disables caching and returns next unchanged.
func NewCachedFormRepository(next FormRepository, ttl, cleanupInterval time.Duration) FormRepository {
	if ttl <= 0 {
		return next
	}

	return &cachedFormRepository{
		FormRepository: next,
		questions:      cache.New(ttl, cleanupInterval),
	}
}

// GetQuestions returns a copy of the cached list, falling back to the
// wrapped repository on a miss. Empty lists are not cached.
func (c *cachedFormRepository) GetQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error) {
	if cached, ok := c.questions.Get(formID); ok {
		logger.FromContext(ctx).Debug().
			Str("func", "cachedFormRepository.GetQuestions").
			Str("form_id", formID).
			Msg("questions served from cache")
		return cloneQuestions(cached.([]models.QuestionRecord)), nil
	}

	questions, err := c.FormRepository.GetQuestions(ctx, formID)
	if err != nil {
		return nil, err
	}

	if len(questions) > 0 {
		c.questions.Set(formID, cloneQuestions(questions), cache.DefaultExpiration)
	}

	return questions, nil
}

// SaveForm invalidates the cached list before and after the write.
func (c *cachedFormRepository) SaveForm(ctx context.Context, form models.Form, questions []models.QuestionRecord) error {
	c.questions.Delete(form.ID)
	defer c.questions.Delete(form.ID)

	return c.FormRepository.SaveForm(ctx, form, questions)
}

func cloneQuestions(in []models.QuestionRecord) []models.QuestionRecord {
	out := make([]models.QuestionRecord, len(in))
	copy(out, in)
	return out
}
