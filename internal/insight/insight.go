// The one outbound integration: a single-shot call to a generative-text
// endpoint that turns live console counts into a short strategic note.
// Only one request may be in flight at a time.

package insight

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrBusy is returned when a request is already outstanding.
var ErrBusy = errors.New("an insight request is already running")

// Stats is the live-state summary the prompt is built from.
type Stats struct {
	SeriesCount  int
	UserCount    int
	CommentCount int
	TopTitle     string
	TopViews     int64
}

// Config carries the endpoint settings, usually from internal/config.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Service issues insight requests. The busy flag is a single-flight
// guard: a second trigger while one request is outstanding is rejected
// without touching the network.
type Service struct {
	client  *openai.Client
	model   string
	timeout time.Duration

	mu   sync.Mutex
	busy bool
}

// New creates a Service from the endpoint settings.
func New(cfg Config) *Service {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Busy reports whether a request is outstanding, so the trigger control
// can show its busy state.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Generate issues the request on its own goroutine and hands the outcome
// to deliver exactly once: (text, nil) on success, ("", err) on failure.
// CRUD and navigation are never blocked by an in-flight request. Returns
// ErrBusy when one is already running.
func (s *Service) Generate(ctx context.Context, stats Stats, deliver func(text string, err error)) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	go func() {
		var text string
		var err error
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Insight request panicked: %v", r)
				err = fmt.Errorf("insight request panicked: %v", r)
			}
			s.mu.Lock()
			s.busy = false
			s.mu.Unlock()
			deliver(text, err)
		}()

		reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		resp, reqErr := s.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: Prompt(stats)},
			},
		})
		if reqErr != nil {
			err = reqErr
			return
		}
		if len(resp.Choices) == 0 {
			err = fmt.Errorf("insight response carried no choices")
			return
		}
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}()
	return nil
}

// Prompt renders the stats context the model is asked to summarize.
func Prompt(stats Stats) string {
	var b strings.Builder
	b.WriteString("You are the Nexus Scan Admin AI. Based on these stats, provide one high-level strategic insight or recommendation for the team:\n")
	fmt.Fprintf(&b, "Scanlation Site: Nexus Scan\n")
	fmt.Fprintf(&b, "Catalog size: %d series\n", stats.SeriesCount)
	fmt.Fprintf(&b, "User count: %d\n", stats.UserCount)
	fmt.Fprintf(&b, "Recent comments: %d\n", stats.CommentCount)
	if stats.TopTitle != "" {
		fmt.Fprintf(&b, "Top performer: %s (%d views)\n", stats.TopTitle, stats.TopViews)
	}
	b.WriteString("Keep it concise (max 2 sentences) and authoritative yet motivating.")
	return b.String()
}
