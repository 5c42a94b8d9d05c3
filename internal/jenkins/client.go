// Package jenkins is a typed client for the Jenkins REST API. It is the
// single point of contact with the remote server: every method maps onto
// one read or write endpoint and classifies failures into the closed
// error set defined in errors.go.
package jenkins

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config is the immutable connection configuration. It is built once at
// startup and passed by value into NewClient.
type Config struct {
	// BaseURL of the Jenkins server, e.g. "https://jenkins.internal:8443".
	BaseURL string
	// Username and APIToken are sent as HTTP basic auth on every request.
	Username string
	APIToken string
	// VerifySSL enables TLS certificate verification. Off by default
	// because internal Jenkins instances commonly run self-signed certs.
	VerifySSL bool
	// Timeout bounds each request end to end. Zero means 30s.
	Timeout time.Duration
}

// Client handles API calls to the Jenkins server. It is safe for
// concurrent use: the configuration is immutable and http.Client pools
// connections internally.
type Client struct {
	baseURL    string
	username   string
	apiToken   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client from the given connection config. A nil
// logger disables client-side logging.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifySSL},
			},
		},
		logger: logger,
	}
}

// Version returns the Jenkins server version. Jenkins reports it in the
// X-Jenkins header of any API response.
func (c *Client) Version(ctx context.Context) (string, error) {
	const op = "get version"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/json", nil)
	if err != nil {
		return "", opErr(op, "", ErrUnavailable, err.Error())
	}
	req.SetBasicAuth(c.username, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", opErr(op, "", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(op, "", resp)
	}

	version := resp.Header.Get("X-Jenkins")
	if version == "" {
		return "", opErr(op, "", ErrUnavailable, "response carries no X-Jenkins header; not a Jenkins server?")
	}

	c.logger.Debug("fetched jenkins version", "version", version)
	return version, nil
}

// Job returns the descriptor of a single job.
func (c *Client) Job(ctx context.Context, name string) (*JobInfo, error) {
	const op = "get job"

	if strings.TrimSpace(name) == "" {
		return nil, opErr(op, name, ErrInvalidArgument, "job name must not be empty")
	}

	endpoint := fmt.Sprintf("%s/job/%s/api/json", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, opErr(op, name, ErrUnavailable, err.Error())
	}
	req.SetBasicAuth(c.username, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, opErr(op, name, ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, opErr(op, name, ErrJobNotFound, "no such job on the server")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(op, name, resp)
	}

	var info JobInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, opErr(op, name, ErrUnavailable, fmt.Sprintf("failed to parse response: %v", err))
	}

	return &info, nil
}

// Jobs returns the server's job listing in the order the server reports it.
// A server with no jobs yields an empty, non-nil slice.
func (c *Client) Jobs(ctx context.Context) ([]JobSummary, error) {
	const op = "list jobs"

	endpoint := c.baseURL + "/api/json?tree=" + url.QueryEscape("jobs[name,url,color]")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, opErr(op, "", ErrUnavailable, err.Error())
	}
	req.SetBasicAuth(c.username, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, opErr(op, "", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(op, "", resp)
	}

	var list jobListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, opErr(op, "", ErrUnavailable, fmt.Sprintf("failed to parse response: %v", err))
	}
	if list.Jobs == nil {
		list.Jobs = []JobSummary{}
	}

	c.logger.Debug("listed jobs", "count", len(list.Jobs))
	return list.Jobs, nil
}

// Build triggers a build of the named job. A nil or empty params map
// triggers the job without parameters; otherwise the parameters are sent
// as form values to buildWithParameters. The returned receipt carries a
// best-effort build number.
func (c *Client) Build(ctx context.Context, name string, params map[string]string) (*BuildReceipt, error) {
	const op = "trigger job"

	if strings.TrimSpace(name) == "" {
		return nil, opErr(op, name, ErrInvalidArgument, "job name must not be empty")
	}

	endpoint := fmt.Sprintf("%s/job/%s/build", c.baseURL, url.PathEscape(name))
	var body io.Reader
	if len(params) > 0 {
		form := url.Values{}
		for k, v := range params {
			form.Set(k, v)
		}
		endpoint = fmt.Sprintf("%s/job/%s/buildWithParameters", c.baseURL, url.PathEscape(name))
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, opErr(op, name, ErrUnavailable, err.Error())
	}
	req.SetBasicAuth(c.username, c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if err := c.addCrumb(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, opErr(op, name, ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, opErr(op, name, ErrJobNotFound, "no such job on the server")
	case resp.StatusCode == http.StatusBadRequest:
		// Jenkins answers 400 both for parameters a non-parameterized
		// job cannot accept and for values its parameter set rejects.
		return nil, opErr(op, name, ErrInvalidParameters, readBody(resp.Body))
	case resp.StatusCode < 200 || resp.StatusCode > 399:
		return nil, c.statusError(op, name, resp)
	}

	receipt := &BuildReceipt{Job: name, Queued: true}

	// Best-effort build number, read back the way the server numbers
	// builds: nextBuildNumber minus one after the trigger landed.
	info, err := c.Job(ctx, name)
	if err != nil {
		c.logger.Warn("triggered build but could not read back build number", "job", name, "err", err)
		return receipt, nil
	}
	if info.NextBuildNumber > 1 {
		receipt.Number = info.NextBuildNumber - 1
	}

	c.logger.Info("triggered job", "job", name, "build", receipt.Number, "params", len(params))
	return receipt, nil
}

// Console returns the raw console text of one build. A build number of
// zero or less means the job's most recent build.
func (c *Client) Console(ctx context.Context, name string, build int) (string, error) {
	const op = "get console"

	if strings.TrimSpace(name) == "" {
		return "", opErr(op, name, ErrInvalidArgument, "job name must not be empty")
	}

	if build <= 0 {
		info, err := c.Job(ctx, name)
		if err != nil {
			return "", err
		}
		if info.LastBuild == nil || info.LastBuild.Number <= 0 {
			return "", opErr(op, name, ErrBuildNotFound, "job has no builds")
		}
		build = info.LastBuild.Number
	}

	endpoint := fmt.Sprintf("%s/job/%s/%d/consoleText", c.baseURL, url.PathEscape(name), build)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", opErr(op, name, ErrUnavailable, err.Error())
	}
	req.SetBasicAuth(c.username, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", opErr(op, name, ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// A 404 here is ambiguous: missing job and missing build look
		// the same. The job lookup decides which it is.
		if _, jobErr := c.Job(ctx, name); jobErr != nil {
			return "", jobErr
		}
		return "", opErr(op, name, ErrBuildNotFound, fmt.Sprintf("build #%d does not exist", build))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(op, name, resp)
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", opErr(op, name, ErrUnavailable, fmt.Sprintf("failed to read console text: %v", err))
	}

	c.logger.Debug("fetched console text", "job", name, "build", build, "bytes", len(text))
	return string(text), nil
}

// addCrumb attaches a CSRF crumb to a mutating request. A 404 from the
// crumb issuer means CSRF protection is disabled on the server, which is
// not an error.
func (c *Client) addCrumb(ctx context.Context, target *http.Request) error {
	const op = "fetch crumb"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/crumbIssuer/api/json", nil)
	if err != nil {
		return opErr(op, "", ErrUnavailable, err.Error())
	}
	req.SetBasicAuth(c.username, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return opErr(op, "", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(op, "", resp)
	}

	var crumb crumbResponse
	if err := json.NewDecoder(resp.Body).Decode(&crumb); err != nil {
		return opErr(op, "", ErrUnavailable, fmt.Sprintf("failed to parse crumb: %v", err))
	}
	if crumb.CrumbRequestField != "" && crumb.Crumb != "" {
		target.Header.Set(crumb.CrumbRequestField, crumb.Crumb)
	}
	return nil
}

// statusError maps an unexpected HTTP status to the unavailable kind,
// preserving the server's own words where it sent any.
func (c *Client) statusError(op, job string, resp *http.Response) *Error {
	detail := fmt.Sprintf("server returned %s", resp.Status)
	if body := readBody(resp.Body); body != "" {
		detail = fmt.Sprintf("%s: %s", detail, body)
	}
	return opErr(op, job, ErrUnavailable, detail)
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	return strings.TrimSpace(string(b))
}
