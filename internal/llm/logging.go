package llm

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/abhisek/tutoriz/internal/logger"
	"github.com/abhisek/tutoriz/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.append(ctx, data)
	return resp, err
}

// GenerateStream logs the request once the stream terminates: on the
// final Recv (io.EOF or error) or on early Close, whichever comes first.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	stream, err := l.inner.GenerateStream(ctx, req)
	if err != nil {
		l.append(ctx, store.LLMRequestEventData{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      purpose,
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			Streamed:     true,
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	return &loggingStream{
		inner:   stream,
		logging: l,
		ctx:     context.WithoutCancel(ctx),
		purpose: purpose,
		start:   start,
	}, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Log the event but don't fail the request if logging fails.
func (l *LoggingProvider) append(ctx context.Context, data store.LLMRequestEventData) {
	if err := l.eventRepo.AppendLLMRequest(ctx, data); err != nil {
		logger.FromContext(ctx).Warn("failed to log LLM request event: %v", err)
	}
}

type loggingStream struct {
	inner   Stream
	logging *LoggingProvider
	ctx     context.Context
	purpose string
	start   time.Time

	once sync.Once
}

func (s *loggingStream) Recv() (string, error) {
	frag, err := s.inner.Recv()
	if err != nil {
		s.finish(err)
	}
	return frag, err
}

func (s *loggingStream) Close() error {
	err := s.inner.Close()
	// Close before exhaustion means the caller abandoned the stream.
	s.finish(errors.New("stream abandoned before completion"))
	return err
}

func (s *loggingStream) finish(terminal error) {
	s.once.Do(func() {
		data := store.LLMRequestEventData{
			Provider:  s.logging.inner.ModelID(),
			Model:     s.logging.inner.ModelID(),
			Purpose:   s.purpose,
			LatencyMs: time.Since(s.start).Milliseconds(),
			Success:   errors.Is(terminal, io.EOF),
			Streamed:  true,
		}
		if !errors.Is(terminal, io.EOF) && terminal != nil {
			data.ErrorMessage = terminal.Error()
		}
		s.logging.append(s.ctx, data)
	})
}
