package gemini

import (
	"context"
	"strings"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
)

// CallFunc is the signature for a single model call.
type CallFunc func(ctx context.Context) (string, error)

// DefaultRetryDelays returns the backoff delays used when the model
// reports overload: 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 4 * time.Second}
}

// CallWithRetry invokes call, retrying on overload-style failures with
// the given delays between attempts. Non-retryable errors propagate
// immediately.
func CallWithRetry(ctx context.Context, delays []time.Duration, call CallFunc) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := call(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// retryable reports whether an error indicates a transient overload
// worth retrying. The genai SDK surfaces these as API errors with
// 429/503 status text.
func retryable(err error) bool {
	if listicle.ErrorCode(err) == listicle.EUNAVAILABLE {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "503")
}
