package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/usecase/notify"
	"github.com/redis/go-redis/v9"
)

const JobTypeMentorRequest = "mentor_request"

// Job is the JSON document pushed for the mail worker.
type Job struct {
	Type        string    `json:"type"`
	MatchID     string    `json:"match_id"`
	MentorID    string    `json:"mentor_id"`
	MentorEmail string    `json:"mentor_email"`
	MenteeID    string    `json:"mentee_id"`
	MenteeName  string    `json:"mentee_name"`
	Subject     string    `json:"subject"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMentorRequestJob(req notify.MentorRequest) Job {
	return Job{
		Type:        JobTypeMentorRequest,
		MatchID:     req.Match.ID.String(),
		MentorID:    req.Mentor.ID.String(),
		MentorEmail: req.Mentor.Email,
		MenteeID:    req.Mentee.ID.String(),
		MenteeName:  req.Mentee.Name,
		Subject:     req.Match.Subject,
		CreatedAt:   req.Match.CreatedAt.UTC(),
	}
}

type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// Redis appends notification jobs to a list.
type Redis struct {
	client listPusher
	key    string
}

func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) NotifyMentorOfRequest(ctx context.Context, req notify.MentorRequest) error {
	payload, err := json.Marshal(NewMentorRequestJob(req))
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}
