package notifier

import (
	"context"
	"log/slog"

	"github.com/gdugdh24/mentorship-backend/internal/usecase/notify"
)

// Log writes notifications to the logger. Used when no queue is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) NotifyMentorOfRequest(ctx context.Context, req notify.MentorRequest) error {
	job := NewMentorRequestJob(req)
	l.logger.InfoContext(ctx, "mentor notification",
		slog.String("type", job.Type),
		slog.String("match_id", job.MatchID),
		slog.String("mentor_id", job.MentorID),
		slog.String("mentee_id", job.MenteeID),
		slog.String("subject", job.Subject),
	)
	return nil
}
