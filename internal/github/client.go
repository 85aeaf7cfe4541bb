// Package github talks to the GitHub GraphQL v4 API and the REST fork endpoint.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/conn-castle/toil/internal/messages"
)

const (
	// DefaultGraphQLURL is the GitHub GraphQL endpoint.
	DefaultGraphQLURL = "https://api.github.com/graphql"
	// DefaultRESTURL is the GitHub REST API root.
	DefaultRESTURL = "https://api.github.com"
	// DefaultRepoLimit caps list queries.
	DefaultRepoLimit = 50
)

// Repo is the subset of repository metadata toil displays.
type Repo struct {
	Name        string
	Description string
	CreatedAt   time.Time
	PushedAt    time.Time
	// DiskUsageKB is GitHub's diskUsage, in kilobytes.
	DiskUsageKB int64
	License     string
	Language    string
	// Parent is owner/name of the upstream for forks.
	Parent string
}

// Client is an authenticated GitHub API client for a single user.
type Client struct {
	username   string
	token      string
	userAgent  string
	graphqlURL string
	restURL    string
	http       *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithGraphQLURL overrides the GraphQL endpoint.
func WithGraphQLURL(url string) Option {
	return func(c *Client) { c.graphqlURL = url }
}

// WithRESTURL overrides the REST API root.
func WithRESTURL(url string) Option {
	return func(c *Client) { c.restURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a client for username authenticated with token.
func NewClient(username string, token string, opts ...Option) *Client {
	c := &Client{
		username:   username,
		token:      token,
		userAgent:  "toil",
		graphqlURL: DefaultGraphQLURL,
		restURL:    DefaultRESTURL,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Username returns the authenticated user.
func (c *Client) Username() string {
	return c.username
}

type repoNode struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	PushedAt    string  `json:"pushedAt"`
	DiskUsage   int64   `json:"diskUsage"`
	LicenseInfo *struct {
		Name string `json:"name"`
	} `json:"licenseInfo"`
	PrimaryLanguage *struct {
		Name string `json:"name"`
	} `json:"primaryLanguage"`
	Parent *struct {
		NameWithOwner string `json:"nameWithOwner"`
	} `json:"parent"`
}

type userReposData struct {
	User *struct {
		Repositories struct {
			Nodes []repoNode `json:"nodes"`
		} `json:"repositories"`
	} `json:"user"`
}

type repositoryData struct {
	Repository *repoNode `json:"repository"`
}

// RepoNames returns the names of repos owned by the user, sorted by name.
func (c *Client) RepoNames(ctx context.Context, limit int) ([]string, error) {
	nodes, err := c.userRepos(ctx, queryRepoNames, limit)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	return names, nil
}

// Repos returns summary info for repos owned by the user.
func (c *Client) Repos(ctx context.Context, limit int) ([]Repo, error) {
	return c.repoList(ctx, queryRepos, limit)
}

// Forks returns the user's forks with their parents.
func (c *Client) Forks(ctx context.Context, limit int) ([]Repo, error) {
	return c.repoList(ctx, queryForks, limit)
}

// RepoExists reports whether owner/name exists on GitHub.
func (c *Client) RepoExists(ctx context.Context, owner string, name string) (bool, error) {
	var data repositoryData
	err := c.graphql(ctx, queryRepoExists, map[string]any{"username": owner, "name": name}, &data)
	if err != nil {
		return false, err
	}
	return data.Repository != nil, nil
}

// RepoInfo returns metadata for the user's repo name, or nil when it does not exist.
func (c *Client) RepoInfo(ctx context.Context, name string) (*Repo, error) {
	var data repositoryData
	err := c.graphql(ctx, queryRepoInfo, map[string]any{"username": c.username, "name": name}, &data)
	if err != nil {
		return nil, err
	}
	if data.Repository == nil {
		return nil, nil
	}
	repo, err := data.Repository.toRepo()
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

// CreateFork forks owner/repo into the authenticated user's account.
// GitHub creates forks asynchronously; the fork may not be clonable immediately.
func (c *Client) CreateFork(ctx context.Context, owner string, repo string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/forks", c.restURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf(messages.GitHubCreateRequestFmt, err)
	}
	c.setHeaders(req, "application/vnd.github.v3+json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf(messages.GitHubRequestFailedFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ResponseError(resp)
	}
	return nil
}

func (c *Client) userRepos(ctx context.Context, query string, limit int) ([]repoNode, error) {
	if limit <= 0 {
		limit = DefaultRepoLimit
	}
	var data userReposData
	err := c.graphql(ctx, query, map[string]any{"username": c.username, "limit": limit}, &data)
	if err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, &GraphQLError{Messages: []string{fmt.Sprintf(messages.GitHubUserNotFoundFmt, c.username)}}
	}
	return data.User.Repositories.Nodes, nil
}

func (c *Client) repoList(ctx context.Context, query string, limit int) ([]Repo, error) {
	nodes, err := c.userRepos(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	repos := make([]Repo, 0, len(nodes))
	for _, n := range nodes {
		repo, err := n.toRepo()
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// onlyNotFound reports whether every error is a NOT_FOUND, which GitHub returns
// next to a null field for a missing repository.
func (r graphqlResponse) onlyNotFound() bool {
	for _, e := range r.Errors {
		if e.Type != "NOT_FOUND" {
			return false
		}
	}
	return len(r.Errors) > 0
}

// graphql posts query and decodes its data into out.
func (c *Client) graphql(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.username == "" || c.token == "" {
		return ErrCredentialsMissing
	}
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf(messages.GitHubEncodeRequestFmt, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf(messages.GitHubCreateRequestFmt, err)
	}
	c.setHeaders(req, "application/vnd.github.v4+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf(messages.GitHubRequestFailedFmt, c.graphqlURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return ResponseError(resp)
	}

	var payload graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf(messages.GitHubDecodeResponseFmt, err)
	}
	if len(payload.Errors) > 0 && !(payload.onlyNotFound() && !isNullData(payload.Data)) {
		msgs := make([]string, 0, len(payload.Errors))
		for _, e := range payload.Errors {
			msgs = append(msgs, e.Message)
		}
		return &GraphQLError{Messages: msgs}
	}
	if isNullData(payload.Data) {
		return &GraphQLError{Messages: []string{messages.GitHubNoData}}
	}
	if err := json.Unmarshal(payload.Data, out); err != nil {
		return fmt.Errorf(messages.GitHubDecodeResponseFmt, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, accept string) {
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)
}

func isNullData(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (n repoNode) toRepo() (Repo, error) {
	repo := Repo{Name: n.Name, DiskUsageKB: n.DiskUsage}
	if n.Description != nil {
		repo.Description = *n.Description
	}
	if n.LicenseInfo != nil {
		repo.License = n.LicenseInfo.Name
	}
	if n.PrimaryLanguage != nil {
		repo.Language = n.PrimaryLanguage.Name
	}
	if n.Parent != nil {
		repo.Parent = n.Parent.NameWithOwner
	}
	var err error
	if repo.CreatedAt, err = parseTime(n.CreatedAt); err != nil {
		return Repo{}, err
	}
	if repo.PushedAt, err = parseTime(n.PushedAt); err != nil {
		return Repo{}, err
	}
	return repo, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf(messages.GitHubParseTimeFmt, raw, err)
	}
	return t, nil
}
