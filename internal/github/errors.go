package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/huangsam/hiresignal/internal/contract"
)

// classify maps GitHub API failures to the shared sentinel errors. A 404 is
// only a missing user when username is set.
func classify(err error, username string) error {
	if err == nil {
		return nil
	}
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) || hasStatus(err, http.StatusTooManyRequests) {
		return fmt.Errorf("%w: %v", contract.ErrRateLimited, err)
	}
	if username != "" && isNotFound(err) {
		return fmt.Errorf("%w: %s", contract.ErrUserNotFound, username)
	}
	return fmt.Errorf("github api: %w", err)
}

func isNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var respErr *gh.ErrorResponse
	return errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == status
}
