package release

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/dest4590/collapse-updater/internal/config"
	"github.com/dest4590/collapse-updater/internal/domain/update"
)

// Client talks to a GitHub-style releases API for a single repository.
// Every request carries the fixed updater User-Agent. There are no retries,
// and the underlying HTTP client carries no timeout of its own.
type Client struct {
	// httpClient performs all requests, API calls and asset downloads alike.
	httpClient *http.Client
	// baseURL is the API endpoint.
	baseURL string
	// userAgent identifies the updater on every request.
	userAgent string
	// owner is the account owning the release repository.
	owner string
	// repo is the repository whose releases are resolved.
	repo string
}

// Option configures client behaviour.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a releases API client for the owner/repo repository.
func NewClient(owner, repo, userAgent string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    config.DefaultAPIBaseURL,
		userAgent:  userAgent,
		owner:      owner,
		repo:       repo,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Release is the decoded release payload. Unrecognized fields are ignored.
type Release struct {
	// Assets lists downloadable artifacts in API order.
	Assets []Asset `json:"assets"`
	// Prerelease marks releases published ahead of the stable stream.
	Prerelease bool `json:"prerelease"`
}

// Asset is a single downloadable artifact of a release.
type Asset struct {
	// Name is the artifact file name.
	Name string `json:"name"`
	// BrowserDownloadURL is the direct download location.
	BrowserDownloadURL string `json:"browser_download_url"`
	// Size is the exact artifact length in bytes.
	Size uint64 `json:"size"`
}

// Resolve picks the release asset for the requested channel.
//
// The stable channel takes the first asset of the latest published release.
// The pre-release channel scans the release list in API order and takes the
// first asset of the first release flagged as a pre-release that has one;
// flagged releases without assets are skipped and the scan continues.
func (c *Client) Resolve(ctx context.Context, channel update.Channel) (update.Descriptor, error) {
	if channel == update.ChannelPreRelease {
		return c.resolvePreRelease(ctx)
	}

	return c.resolveStable(ctx)
}

// Latest fetches the latest published release.
func (c *Client) Latest(ctx context.Context) (*Release, error) {
	response, err := c.get(ctx, "releases", "latest")
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	var release Release
	if err = json.NewDecoder(response.Body).Decode(&release); err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "decode release payload")
	}

	return &release, nil
}

// Releases fetches the release list in API order, newest first.
func (c *Client) Releases(ctx context.Context) ([]Release, error) {
	response, err := c.get(ctx, "releases")
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	var releases []Release
	if err = json.NewDecoder(response.Body).Decode(&releases); err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "decode release list payload")
	}

	return releases, nil
}

// Fetch opens a streaming GET for an asset. The caller owns the body.
// The response status is not inspected; the pipeline trusts the stream.
func (c *Client) Fetch(ctx context.Context, assetURL string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, http.NoBody)
	if err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "build request for %s", assetURL)
	}

	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "download %s", assetURL)
	}

	return response.Body, nil
}

func (c *Client) resolveStable(ctx context.Context) (update.Descriptor, error) {
	release, err := c.Latest(ctx)
	if err != nil {
		return update.Descriptor{}, err
	}

	if len(release.Assets) == 0 {
		return update.Descriptor{}, update.NewError(update.KindAPIRequest, nil, "no assets found in the release")
	}

	return toDescriptor(release.Assets[0], release.Prerelease), nil
}

func (c *Client) resolvePreRelease(ctx context.Context) (update.Descriptor, error) {
	releases, err := c.Releases(ctx)
	if err != nil {
		return update.Descriptor{}, err
	}

	for _, release := range releases {
		if !release.Prerelease || len(release.Assets) == 0 {
			continue
		}

		return toDescriptor(release.Assets[0], true), nil
	}

	return update.Descriptor{}, update.NewError(update.KindNoPreRelease, nil, "")
}

// get performs an API request and verifies the response status.
func (c *Client) get(ctx context.Context, parts ...string) (*http.Response, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "parse API base URL")
	}

	// Use path.Join to normalize duplicate slashes when composing the URL path.
	base.Path = path.Join(append([]string{base.Path, "repos", c.owner, c.repo}, parts...)...)
	finalURL := base.String()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, http.NoBody)
	if err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "build request for %s", finalURL)
	}

	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, update.NewError(update.KindAPIRequest, err, "request %s", finalURL)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		defer func() {
			_ = response.Body.Close()
		}()

		if response.StatusCode == http.StatusTooManyRequests {
			return nil, update.NewError(update.KindAPIRequest, nil,
				"rate limit exceeded, please wait a while before trying again (status code %d)", response.StatusCode)
		}

		return nil, update.NewError(update.KindAPIRequest, nil,
			"request failed with status code %d, response body: %s", response.StatusCode, readErrorBody(response.Body))
	}

	return response, nil
}

// readErrorBody extracts the response body of a failed request for reporting.
func readErrorBody(body io.Reader) string {
	contents, err := io.ReadAll(body)
	if err != nil {
		return "failed to get response body"
	}

	return string(contents)
}

func toDescriptor(asset Asset, prerelease bool) update.Descriptor {
	return update.Descriptor{
		AssetURL:   asset.BrowserDownloadURL,
		AssetSize:  asset.Size,
		Prerelease: prerelease,
	}
}
