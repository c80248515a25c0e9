package generation

import (
	"context"
	"time"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/metrics"
	"google.golang.org/genai"
)

type instrumented struct {
	next Generator
}

// Instrument wraps g with Prometheus metrics and diagnostic logging.
func Instrument(g Generator) Generator {
	if _, ok := g.(*instrumented); ok {
		return g
	}
	return &instrumented{next: g}
}

func (i *instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := i.next.Generate(ctx, prompt)
	metrics.ObserveGeneration("text", start, err)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Text generation failed")
	}
	return text, err
}

func (i *instrumented) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	start := time.Now()
	text, err := i.next.GenerateJSON(ctx, prompt, schema)
	metrics.ObserveGeneration("json", start, err)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("JSON generation failed")
	}
	return text, err
}

// StreamChat relays the inner stream so fragments and the final outcome are recorded.
func (i *instrumented) StreamChat(ctx context.Context, req ChatRequest) *Stream {
	start := time.Now()
	inner := i.next.StreamChat(ctx, req)

	return NewStream(ctx, func(ctx context.Context, emit func(string) bool) (err error) {
		go func() {
			<-ctx.Done()
			inner.Cancel()
		}()
		defer func() {
			metrics.ObserveGeneration("stream", start, err)
			if err != nil {
				config.WithContext(ctx).WithError(err).WithField("stream_id", inner.ID).Error("Chat stream failed")
			}
		}()

		for ev := range inner.Events() {
			switch ev.Kind {
			case EventFragment:
				metrics.StreamFragments.Inc()
				if !emit(ev.Text) {
					inner.Cancel()
					for range inner.Events() {
					}
					return ctx.Err()
				}
			case EventError:
				return ev.Err
			}
		}
		return nil
	})
}
