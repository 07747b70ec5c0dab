package container

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/config"
	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/auth"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/notify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0, ReadTimeout: time.Second, WriteTimeout: time.Second},
		JWT:     config.JWTConfig{AccessSecret: "0123456789abcdef0123456789abcdef"},
		Storage: config.StorageConfig{Type: config.StorageTypeMemory},
		Notification: config.NotificationConfig{
			QueueKey: "q",
			Workers:  1,
			Buffer:   4,
			Timeout:  time.Second,
		},
	}
}

func TestNewContainer_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewContainer(context.Background(), memoryConfig(), logger)
	require.NoError(t, err)

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Redis)
	assert.NotNil(t, c.Dispatcher)
	assert.NotNil(t, c.Metrics)
	assert.NotNil(t, c.Server)

	require.NoError(t, c.Close())
	assert.False(t, c.Dispatcher.Dispatch(notify.MentorRequest{}))
}

func TestNewContainer_BadReferenceData(t *testing.T) {
	cfg := memoryConfig()
	cfg.ReferenceData.Path = "/does/not/exist.yaml"

	_, err := NewContainer(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestNewContainer_UnknownStorage(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Type = "cassandra"

	_, err := NewContainer(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestContainer_ServesHealth(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer c.Close()

	srv := httptest.NewServer(c.Server.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

const (
	seedMentorID = "5b1f0c2e-7d4a-4c53-9a51-0f6f3b1d2a01"
	seedMenteeID = "5b1f0c2e-7d4a-4c53-9a51-0f6f3b1d2a03"
)

const seedUsersYAML = `users:
  - id: ` + seedMentorID + `
    name: Ada
    email: ada@example.com
    career: {area: 1, role: 2, years: 5, educational_background: 3}
    expertise: [1, 5]
  - id: ` + seedMenteeID + `
    name: Bob
    email: bob@example.com
    career: {area: 1, role: 1, years: 1, educational_background: 5}
    expertise: [1]
`

func TestNewContainer_BadSeed(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.SeedPath = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := NewContainer(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestContainer_SeededMemoryLifecycle(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.SeedPath = filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(cfg.Storage.SeedPath, []byte(seedUsersYAML), 0o600))

	c, err := NewContainer(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer c.Close()

	srv := httptest.NewServer(c.Server.Handler())
	defer srv.Close()

	tokens := auth.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer)
	call := func(method, path, as, body string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		tok, err := tokens.Issue(uuid.MustParse(as), time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	resp := call(http.MethodPost, "/api/v1/match/mentors/count", seedMenteeID,
		`{"career":{"area":0,"role":0,"years":0,"educational_background":0},"expertise":[5]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&count))
	assert.Equal(t, 1, count.Count)

	resp = call(http.MethodPost, "/api/v1/match/requests", seedMenteeID,
		`{"mentor_id":"`+seedMentorID+`","subject":"Go","content":"Could you review my service?"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created domain.Match
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, domain.MatchStatusPending, created.Status)

	resp = call(http.MethodPost, "/api/v1/match/responses", seedMentorID,
		`{"match_id":"`+created.ID.String()+`","option":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var accepted domain.Match
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&accepted))
	assert.Equal(t, domain.MatchStatusAccepted, accepted.Status)

	resp = call(http.MethodGet, "/api/v1/match/activity", seedMenteeID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view domain.Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	require.Len(t, view.Accepted, 1)
	assert.Equal(t, created.ID, view.Accepted[0].ID)
	assert.Equal(t, "Ada", view.Accepted[0].Counterpart)
}
