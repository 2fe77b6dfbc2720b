package vro

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
)

// State is the normalized lifecycle state of an orchestration job.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// DefaultWorkflow is the job template requested for component provisioning.
const DefaultWorkflow = "Request Component"

const defaultTimeout = 30 * time.Second

var (
	// ErrSubmissionRejected indicates the engine refused the job, either
	// bad credentials or a bad parameter set. The client never retries.
	ErrSubmissionRejected = errors.New("orchestration job submission rejected")
	// ErrJobUnreachable indicates a network failure or timeout talking to
	// the engine. Retry is at the caller's discretion.
	ErrJobUnreachable = errors.New("orchestration engine unreachable")
)

// Parameters is the flat, strongly-keyed parameter set of one job.
type Parameters map[string]interface{}

// Credentials hold the engine connection settings, sourced from
// provider-level answers.
type Credentials struct {
	ID       string
	URL      string
	Username string
	Password string
}

// Complete reports whether every credential field is set.
func (c Credentials) Complete() bool {
	return c.ID != "" && c.URL != "" && c.Username != "" && c.Password != ""
}

// Config configures a client for one engine endpoint.
type Config struct {
	Credentials Credentials
	// Workflow is the name of the job template to request.
	Workflow string
	// InsecureSkipVerify disables TLS verification towards the engine.
	// Verification is on by default; disabling is an explicit, logged
	// opt-in for lab deployments with self-signed certificates.
	InsecureSkipVerify bool
	// Timeout bounds every submit/poll call.
	Timeout time.Duration
}

// Execution is the polled view of a job.
type Execution struct {
	Handle string            `json:"id"`
	State  State             `json:"state"`
	Output map[string]string `json:"output,omitempty"`
}

//go:generate mockgen -destination=mock_client.go -package=vro . Client

// Client is the boundary to the external workflow orchestration engine.
// Submit and Poll perform no retries of their own.
type Client interface {
	Submit(ctx context.Context, params Parameters) (string, error)
	Poll(ctx context.Context, handle string) (Execution, error)
}

// NewClient is a variable so tests can swap in a mocked client.
var NewClient = func(cfg Config) Client {
	if cfg.Workflow == "" {
		cfg.Workflow = DefaultWorkflow
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		log.GetLogger().Warn("TLS verification towards the orchestration engine is disabled",
			zap.String("url", cfg.Credentials.URL))
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

type client struct {
	cfg        Config
	httpClient *http.Client
}

type submitRequest struct {
	Workflow   string     `json:"workflow"`
	Parameters Parameters `json:"parameters"`
}

type submitResponse struct {
	ID string `json:"id"`
}

func (c *client) Submit(ctx context.Context, params Parameters) (string, error) {
	if !c.cfg.Credentials.Complete() {
		return "", fmt.Errorf("incomplete engine credentials: %w", ErrSubmissionRejected)
	}

	body, err := json.Marshal(submitRequest{Workflow: c.cfg.Workflow, Parameters: params})
	if err != nil {
		return "", fmt.Errorf("error encoding job parameters: %w", err)
	}

	url := fmt.Sprintf("%s/api/workflows/%s/executions", c.cfg.Credentials.URL, c.cfg.Credentials.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error building submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Credentials.Username, c.cfg.Credentials.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error submitting job: %v: %w", err, ErrJobUnreachable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", fmt.Errorf("engine returned %d on submit: %w", resp.StatusCode, ErrSubmissionRejected)
	default:
		return "", fmt.Errorf("engine returned %d on submit: %w", resp.StatusCode, ErrJobUnreachable)
	}

	var sr submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("error decoding submit response: %v: %w", err, ErrJobUnreachable)
	}
	if sr.ID == "" {
		return "", fmt.Errorf("engine returned no job handle: %w", ErrSubmissionRejected)
	}
	return sr.ID, nil
}

type pollResponse struct {
	ID     string            `json:"id"`
	State  string            `json:"state"`
	Output map[string]string `json:"output,omitempty"`
}

func (c *client) Poll(ctx context.Context, handle string) (Execution, error) {
	url := fmt.Sprintf("%s/api/workflows/%s/executions/%s", c.cfg.Credentials.URL, c.cfg.Credentials.ID, handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Execution{}, fmt.Errorf("error building poll request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Credentials.Username, c.cfg.Credentials.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Execution{}, fmt.Errorf("error polling job %s: %v: %w", handle, err, ErrJobUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Execution{}, fmt.Errorf("engine returned %d on poll of job %s: %w", resp.StatusCode, handle, ErrJobUnreachable)
	}

	var pr pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return Execution{}, fmt.Errorf("error decoding poll response: %v: %w", err, ErrJobUnreachable)
	}

	return Execution{
		Handle: handle,
		State:  NormalizeState(pr.State),
		Output: pr.Output,
	}, nil
}

// NormalizeState folds the engine's state vocabulary into the four states
// this portal tracks.
func NormalizeState(state string) State {
	switch state {
	case "completed":
		return StateCompleted
	case "running", "suspended":
		return StateRunning
	case "waiting", "waiting-signal", "queued", "initializing", "pending", "":
		return StatePending
	default:
		// failed, canceled and anything unrecognized count as failed
		return StateFailed
	}
}
