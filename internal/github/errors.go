package github

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/conn-castle/toil/internal/messages"
)

// ErrCredentialsMissing means the client has no username or token.
var ErrCredentialsMissing = errors.New(messages.GitHubCredentialsMissing)

// StatusError is a non-2xx response from the GitHub API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.GitHubStatusFmt, e.Status)
}

// RateLimitError indicates GitHub's API rate limit was hit.
type RateLimitError struct {
	StatusCode int
	Status     string
	Remaining  *int
}

func (e *RateLimitError) Error() string {
	remainingText := "unknown"
	if e.Remaining != nil {
		remainingText = strconv.Itoa(*e.Remaining)
	}
	return fmt.Sprintf(messages.GitHubRateLimitFmt, e.Status, remainingText)
}

// IsRateLimitError reports whether err represents a GitHub API rate-limit condition.
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// GraphQLError is a response that carried errors or no data.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf(messages.GitHubBadGraphQLFmt, strings.Join(e.Messages, "; "))
}

// ResponseError classifies a non-2xx response as a RateLimitError or StatusError.
func ResponseError(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// GitHub returns 403 Forbidden for exhaustion; confirm with rate-limit headers.
	if resp.StatusCode == http.StatusForbidden {
		remainingStr := strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))
		if remaining, err := strconv.Atoi(remainingStr); err == nil && remaining == 0 {
			return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status, Remaining: &remaining}
		}
	}
	return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
}
