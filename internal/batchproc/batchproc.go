package batchproc

import (
	"context"
	"errors"
	"strings"

	"recruiting-backend/internal/matching"
	"recruiting-backend/internal/queue"
)

// BatchRunner runs a batch match; satisfied by *matching.Service.
type BatchRunner interface {
	BatchMatch(ctx context.Context, jobPostingID string, minScore float64) (matching.BatchResult, error)
}

// ErrEmptyBody indicates an empty queue payload.
var ErrEmptyBody = errors.New("empty message body")

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Err error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

func (e ErrDecode) Unwrap() error { return e.Err }

// ErrMissingJobPostingID indicates a message missing the job posting id.
type ErrMissingJobPostingID struct {
	RequestID string
}

func (e ErrMissingJobPostingID) Error() string { return "missing job posting id" }

// ErrProcess indicates the batch run failed after successful parsing.
type ErrProcess struct {
	JobPostingID string
	RequestID    string
	Err          error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "process batch match"
	}
	return "process batch match: " + e.Err.Error()
}

func (e ErrProcess) Unwrap() error { return e.Err }

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (queue.Message, error) {
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, ErrEmptyBody
	}
	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, ErrDecode{Err: err}
	}
	if strings.TrimSpace(msg.JobPostingID) == "" {
		return msg, ErrMissingJobPostingID{RequestID: msg.RequestID}
	}
	return msg, nil
}

// HandleMessage parses a queue payload and runs the batch match it requests.
// Parse failures are unrecoverable and should not be retried; a process
// failure is retryable.
func (h *Handler) HandleMessage(ctx context.Context, body string) (matching.BatchResult, error) {
	msg, err := ParseMessage(body)
	if err != nil {
		return matching.BatchResult{}, err
	}
	result, err := h.Runner.BatchMatch(ctx, msg.JobPostingID, msg.MinScore)
	if err != nil {
		return result, ErrProcess{JobPostingID: msg.JobPostingID, RequestID: msg.RequestID, Err: err}
	}
	return result, nil
}

// Handler dispatches parsed batch-match requests to a runner.
type Handler struct {
	Runner BatchRunner
}

// Unrecoverable reports whether the error means the message can never succeed
// and should be deleted rather than retried.
func Unrecoverable(err error) bool {
	if errors.Is(err, ErrEmptyBody) {
		return true
	}
	var decodeErr ErrDecode
	if errors.As(err, &decodeErr) {
		return true
	}
	var missingErr ErrMissingJobPostingID
	return errors.As(err, &missingErr)
}
