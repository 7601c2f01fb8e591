package client

import (
	"context"
	"fmt"

	"github.com/parley-dev/parley/internal/utils"
	"github.com/parley-dev/parley/providers/ai"
	"github.com/parley-dev/parley/providers/observability"
)

// SendRequest sends a fully-specified request through the underlying
// provider. An empty request model falls back to the client's default; when
// neither is set the request is rejected before any network I/O.
func (c *Client) SendRequest(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if request.Model == "" {
		if c.defaultModel == "" {
			return nil, fmt.Errorf("%w: no default model set", ai.ErrMissingField)
		}
		request.Model = c.defaultModel
	}

	if c.observer == nil {
		return c.provider.SendMessage(ctx, request)
	}

	return c.sendObserved(ctx, request)
}

// Send sends a single user prompt to the client's default model.
func (c *Client) Send(ctx context.Context, prompt string) (*ai.ChatResponse, error) {
	if c.defaultModel == "" {
		return nil, fmt.Errorf("%w: no default model set", ai.ErrMissingField)
	}

	request := ai.NewChatRequest(c.defaultModel).WithMessages(ai.UserMessage(prompt))

	return c.SendRequest(ctx, request)
}

// SendWithSystem sends a single user prompt under the given system prompt to
// the client's default model.
func (c *Client) SendWithSystem(ctx context.Context, system, prompt string) (*ai.ChatResponse, error) {
	if c.defaultModel == "" {
		return nil, fmt.Errorf("%w: no default model set", ai.ErrMissingField)
	}

	request := ai.NewChatRequest(c.defaultModel).
		WithSystemPrompt(system).
		WithMessages(ai.UserMessage(prompt))

	return c.SendRequest(ctx, request)
}

// sendObserved wraps the provider call with a tracing span, duration and
// token metrics, and structured logs. The span and observer ride the context
// so the adapter can attach its own request and response events.
func (c *Client) sendObserved(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	ctx, span := c.observer.StartSpan(ctx, observability.SpanClientSendMessage,
		observability.String(observability.AttrLLMProvider, c.provider.Name()),
		observability.String(observability.AttrLLMModel, request.Model),
	)
	ctx = observability.ContextWithSpan(ctx, span)
	ctx = observability.ContextWithObserver(ctx, c.observer)

	c.observer.Debug(ctx, "llm send",
		observability.String(observability.AttrLLMModel, request.Model),
		observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
	)

	timer := utils.NewTimer()
	response, err := c.provider.SendMessage(ctx, request)
	timer.Stop()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "llm send failed")
		span.End()

		c.observer.Error(ctx, "llm send failed",
			observability.Error(err),
			observability.Duration(observability.AttrDuration, timer.GetDuration()),
			observability.String(observability.AttrLLMModel, request.Model),
		)

		c.observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
			observability.String(observability.AttrStatus, "error"),
			observability.String(observability.AttrLLMModel, request.Model),
		)

		return nil, err
	}

	c.recordSendSuccess(ctx, span, response, timer, request.Model)

	return response, nil
}

// recordSendSuccess writes the success-path observability data: duration
// histogram, request and token counters, span attributes, a structured INFO
// log, and then ends the span.
func (c *Client) recordSendSuccess(ctx context.Context, span observability.Span, response *ai.ChatResponse, timer *utils.Timer, model string) {
	elapsed := timer.GetDuration()

	c.observer.Histogram(observability.MetricClientRequestDuration).Record(ctx, elapsed.Seconds(),
		observability.String(observability.AttrLLMModel, model),
	)

	c.observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
		observability.String(observability.AttrStatus, "success"),
		observability.String(observability.AttrLLMModel, model),
	)

	c.observer.Counter(observability.MetricClientTokensTotal).Add(ctx, int64(response.Usage.Total()),
		observability.String(observability.AttrLLMModel, model),
	)
	c.observer.Counter(observability.MetricClientTokensInput).Add(ctx, int64(response.Usage.InputTokens),
		observability.String(observability.AttrLLMModel, model),
	)
	c.observer.Counter(observability.MetricClientTokensOutput).Add(ctx, int64(response.Usage.OutputTokens),
		observability.String(observability.AttrLLMModel, model),
	)

	span.SetAttributes(
		observability.Int(observability.AttrLLMTokensTotal, response.Usage.Total()),
		observability.Int(observability.AttrLLMTokensInput, response.Usage.InputTokens),
		observability.Int(observability.AttrLLMTokensOutput, response.Usage.OutputTokens),
	)

	logAttrs := []observability.Attribute{
		observability.String(observability.AttrLLMModel, model),
		observability.Duration(observability.AttrDuration, elapsed),
		observability.Int(observability.AttrLLMTokensInput, response.Usage.InputTokens),
		observability.Int(observability.AttrLLMTokensOutput, response.Usage.OutputTokens),
	}
	if response.Content != "" {
		logAttrs = append(logAttrs,
			observability.String("response", utils.TruncateString(response.Content, 100)),
		)
	}

	c.observer.Info(ctx, "llm send completed", logAttrs...)

	span.SetStatus(observability.StatusOK, "success")
	span.End()
}
