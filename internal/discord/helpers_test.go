package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedRequest is one Discord REST call seen by the fake API.
type capturedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakeDiscord answers the handful of REST endpoints the bot uses.
type fakeDiscord struct {
	mu       sync.Mutex
	requests []capturedRequest
	channels []*discordgo.Channel
	fail     bool
}

func (f *fakeDiscord) roundTrip(req *http.Request) (*http.Response, error) {
	captured := capturedRequest{Method: req.Method, Path: strings.TrimPrefix(req.URL.Path, "/api/v"+discordgo.APIVersion)}
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(data, &captured.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, captured)
	channels := f.channels
	fail := f.fail
	f.mu.Unlock()

	if fail {
		return respond(http.StatusBadRequest, map[string]any{"message": "nope", "code": 50035}), nil
	}
	switch {
	case strings.HasSuffix(captured.Path, "/users/@me/channels"):
		return respond(http.StatusOK, map[string]any{"id": "dm-" + captured.Body["recipient_id"].(string), "type": discordgo.ChannelTypeDM}), nil
	case strings.HasSuffix(captured.Path, "/channels") && req.Method == http.MethodGet:
		return respond(http.StatusOK, channels), nil
	case req.Method == http.MethodDelete:
		return respond(http.StatusNoContent, nil), nil
	}
	return respond(http.StatusOK, map[string]any{"id": "m1"}), nil
}

// sent returns the text of every message posted, keyed by channel id, in order.
func (f *fakeDiscord) sent() map[string][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string][]string{}
	for _, r := range f.requests {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.Path, "/messages") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(r.Path, "/channels/"), "/messages")
		content, _ := r.Body["content"].(string)
		out[id] = append(out[id], content)
	}
	return out
}

func (f *fakeDiscord) count(method, suffix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.Method == method && strings.HasSuffix(r.Path, suffix) {
			n++
		}
	}
	return n
}

func respond(status int, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(&buf),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// fakeCommands records what the bot asked the dispatcher to run.
type fakeCommands struct {
	players   map[string]*inventory.Player
	lookups   int
	executed  []string
	moderated []string
}

func (f *fakeCommands) Player(memberID string) *inventory.Player {
	f.lookups++
	return f.players[memberID]
}

func (f *fakeCommands) Execute(_ context.Context, p *inventory.Player, text string) (string, error) {
	f.executed = append(f.executed, p.Name+": "+text)
	return "You take a HAMMER.", nil
}

func (f *fakeCommands) ExecuteModerator(_ context.Context, text string) (string, error) {
	f.moderated = append(f.moderated, text)
	return "done", nil
}

// newTestBot builds a bot whose REST calls go to a fake Discord API.
func newTestBot(t *testing.T, commands *fakeCommands) (*Bot, *fakeDiscord) {
	t.Helper()
	bot, err := New(Config{
		Token:          "test-token",
		GuildID:        "guild",
		LogChannelID:   "log",
		ModeratorRole:  "mod",
		MemberCacheTTL: time.Minute,
	}, commands)
	if err != nil {
		t.Fatalf("Failed to create bot: %v", err)
	}
	api := &fakeDiscord{}
	bot.Session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: api.roundTrip}}
	bot.Session.MaxRestRetries = 0
	return bot, api
}
