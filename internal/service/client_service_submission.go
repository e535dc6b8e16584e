package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/cenkalti/backoff"
)

type submissionService struct {
	store adapter.FormStore

	// newBackOff builds the retry policy of one submission.
	newBackOff func() backoff.BackOff

	inFlight atomic.Bool
}

// NewSubmissionService returns a [SubmissionService]. Inserts failing with a
// retryable store error are retried with exponential backoff for at most
// maxElapsed; zero disables retries.
func NewSubmissionService(store adapter.FormStore, maxElapsed time.Duration) SubmissionService {
	return &submissionService{
		store:      store,
		newBackOff: exponentialBackOff(maxElapsed),
	}
}

func exponentialBackOff(maxElapsed time.Duration) func() backoff.BackOff {
	return func() backoff.BackOff {
		if maxElapsed <= 0 {
			return &backoff.StopBackOff{}
		}
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 500 * time.Millisecond
		b.MaxInterval = 5 * time.Second
		b.MaxElapsedTime = maxElapsed
		return b
	}
}

// Submit encrypts answers into a single envelope and inserts it. Retries
// resend the same envelope, and the store keys responses by form and IV, so
// a retry after a lost reply returns the first insert's ID instead of adding
// a duplicate row.
func (s *submissionService) Submit(ctx context.Context, formID string, sealer crypto.SubmissionSealer, answers models.AnswerSet) (models.InsertResponseResult, error) {
	log := logger.FromContext(ctx)

	if !s.inFlight.CompareAndSwap(false, true) {
		return models.InsertResponseResult{}, ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	envelope, err := sealer.EncryptSubmission(answers)
	if err != nil {
		log.Err(err).Str("func", "submissionService.Submit").Str("form_id", formID).Msg("encrypting submission failed, nothing sent")
		return models.InsertResponseResult{}, err
	}

	var id string
	insert := func() error {
		var insertErr error
		id, insertErr = s.store.InsertResponse(ctx, formID, envelope)
		if insertErr == nil {
			return nil
		}
		if adapter.IsRetryable(insertErr) {
			return insertErr
		}
		return backoff.Permanent(insertErr)
	}

	err = backoff.RetryNotify(insert, backoff.WithContext(s.newBackOff(), ctx), func(err error, next time.Duration) {
		log.Warn().Err(err).Str("func", "submissionService.Submit").Str("form_id", formID).Dur("retry_in", next).Msg("response insert failed, retrying")
	})
	if err != nil {
		log.Err(err).Str("func", "submissionService.Submit").Str("form_id", formID).Msg("response insert failed")
		return models.InsertResponseResult{}, mapAdapterError(err)
	}

	log.Info().Str("func", "submissionService.Submit").Str("form_id", formID).Str("response_id", id).Msg("response submitted")

	return models.InsertResponseResult{ID: id}, nil
}
