// Package update compares the running toil build against the latest GitHub release.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/messages"
)

// Repo identifies the GitHub repository used for release checks.
const Repo = "conn-castle/toil"

// ReleasesURL is the human-facing releases page.
const ReleasesURL = "https://github.com/" + Repo + "/releases"

// EnvNoNetwork disables the release check when set to any non-empty value.
const EnvNoNetwork = "TOIL_NO_NETWORK"

var latestReleaseURL = "https://api.github.com/repos/" + Repo + "/releases/latest"
var httpClient = &http.Client{Timeout: 10 * time.Second}
var retryDelay = 250 * time.Millisecond
var sleep = time.Sleep

const fetchLatestRetryCount = 1

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Check fetches the latest release and compares it to currentVersion.
func Check(ctx context.Context, currentVersion string) (CheckResult, error) {
	current, isDev, err := normalizeCurrentVersion(currentVersion)
	if err != nil {
		return CheckResult{}, err
	}
	latest, err := latestTag(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{Current: current, Latest: latest, CurrentIsDev: isDev}
	if !isDev {
		cmp, err := compareSemver(current, latest)
		if err != nil {
			return CheckResult{}, err
		}
		result.Outdated = cmp < 0
	}
	return result, nil
}

type release struct {
	TagName string `json:"tag_name"`
}

// latestTag asks GitHub for the newest release, retrying once on network
// failures and 5xx responses.
func latestTag(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= fetchLatestRetryCount; attempt++ {
		if attempt > 0 {
			sleep(retryDelay)
		}
		tag, retry, err := fetchRelease(ctx)
		if err == nil {
			return tag, nil
		}
		if !retry {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

func fetchRelease(ctx context.Context) (tag string, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateCreateRequestErrFmt, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "toil")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", transient(err), fmt.Errorf(messages.UpdateFetchLatestReleaseErrFmt, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := github.ResponseError(resp)
		if github.IsRateLimitError(apiErr) {
			return "", false, apiErr
		}
		return "", resp.StatusCode >= 500, fmt.Errorf(messages.UpdateFetchLatestReleaseStatusFmt, resp.Status)
	}

	var payload release
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false, fmt.Errorf(messages.UpdateDecodeLatestReleaseErrFmt, err)
	}
	if strings.TrimSpace(payload.TagName) == "" {
		return "", false, errors.New(messages.UpdateLatestReleaseMissingTag)
	}
	v, err := Normalize(payload.TagName)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, payload.TagName, err)
	}
	return v, false, nil
}

func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsDev reports whether raw names an unreleased build.
func IsDev(raw string) bool {
	v := strings.TrimSpace(raw)
	return v == "" || v == "dev" || strings.HasSuffix(v, "-dev")
}

// Normalize strips a leading "v" and checks the X.Y.Z form.
func Normalize(raw string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if _, err := parseSemver(v); err != nil {
		return "", err
	}
	return v, nil
}

func normalizeCurrentVersion(raw string) (string, bool, error) {
	if IsDev(raw) {
		return "dev", true, nil
	}
	normalized, err := Normalize(raw)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateInvalidCurrentVersionFmt, raw, err)
	}
	return normalized, false, nil
}

// compareSemver returns -1, 0, or 1 as a is older than, equal to, or newer than b.
func compareSemver(a string, b string) (int, error) {
	aParts, err := parseSemver(a)
	if err != nil {
		return 0, err
	}
	bParts, err := parseSemver(b)
	if err != nil {
		return 0, err
	}
	for i := range aParts {
		if aParts[i] != bParts[i] {
			if aParts[i] < bParts[i] {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

func parseSemver(raw string) ([3]int, error) {
	parts := strings.Split(strings.TrimPrefix(raw, "v"), ".")
	if len(parts) != 3 {
		return [3]int{}, fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
	}
	var out [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return [3]int{}, fmt.Errorf(messages.UpdateInvalidVersionSegmentFmt, part, err)
		}
		if value < 0 {
			return [3]int{}, fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
		}
		out[i] = value
	}
	return out, nil
}
