package llm

import (
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Sentinel errors for failures that originate on our side of the gateway.
var (
	ErrNotConfigured     = errors.New("llm: client not configured")
	ErrMalformedResponse = errors.New("llm: malformed completion response")
)

// FailureKind buckets gateway failures for logging and policy decisions.
type FailureKind string

const (
	KindNotConfigured FailureKind = "not_configured"
	KindQuota         FailureKind = "insufficient_quota"
	KindAuth          FailureKind = "invalid_api_key"
	KindRateLimit     FailureKind = "rate_limit_exceeded"
	KindMalformed     FailureKind = "malformed_response"
	KindOther         FailureKind = "upstream_error"
)

// Action is what the caller should do with a classified failure.
type Action int

const (
	ActionFallback Action = iota
	ActionPropagate
)

// Policy maps a failure kind to an action.  The production policy degrades
// every failure to the apology fallback; tests substitute stricter
// policies to verify behavior per kind.
type Policy func(FailureKind) Action

// DefaultPolicy never breaks the conversation.
func DefaultPolicy(FailureKind) Action { return ActionFallback }

// ClassifyError inspects a gateway error and returns its failure kind.
func ClassifyError(err error) FailureKind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ErrNotConfigured):
		return KindNotConfigured
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformed
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok {
			switch code {
			case "insufficient_quota":
				return KindQuota
			case "invalid_api_key":
				return KindAuth
			case "rate_limit_exceeded":
				return KindRateLimit
			}
		}
		switch apiErr.HTTPStatusCode {
		case 401:
			return KindAuth
		case 429:
			return KindRateLimit
		}
	}
	return KindOther
}
