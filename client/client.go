package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	apiPrefix      = "/api/portfolio"
	defaultTimeout = 10 * time.Second
)

// APIError carries the HTTP status of a failed call when one was
// received. Network and timeout failures surface as plain errors.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

// envelope is the server's uniform response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is a thin HTTP wrapper with one method per backend operation.
// It does not retry, cache or deduplicate in-flight requests.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

func (c *Client) logf(format string, args ...any) {
	if c != nil && c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	if c == nil || c.http == nil {
		return fmt.Errorf("nil client")
	}
	endpoint := c.baseURL + apiPrefix + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logf("[API] %s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logf("[API] request error | method=%s path=%s err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch {
		case resp.StatusCode == http.StatusNotFound:
			c.logf("[API] resource not found | method=%s path=%s", method, path)
		case resp.StatusCode >= 500:
			c.logf("[API] server error | method=%s path=%s status=%d", method, path, resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) GetPersonalInfo(ctx context.Context) (PersonalInfo, error) {
	var out PersonalInfo
	err := c.doJSON(ctx, http.MethodGet, "/personal-info", nil, &out)
	return out, err
}

func (c *Client) GetEducation(ctx context.Context) ([]Education, error) {
	out := []Education{}
	err := c.doJSON(ctx, http.MethodGet, "/education", nil, &out)
	return out, err
}

func (c *Client) GetSkills(ctx context.Context) ([]SkillCategory, error) {
	out := []SkillCategory{}
	err := c.doJSON(ctx, http.MethodGet, "/skills", nil, &out)
	return out, err
}

func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	out := []Project{}
	err := c.doJSON(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

func (c *Client) GetExperience(ctx context.Context) ([]Experience, error) {
	out := []Experience{}
	err := c.doJSON(ctx, http.MethodGet, "/experience", nil, &out)
	return out, err
}

func (c *Client) GetCertifications(ctx context.Context) ([]Certification, error) {
	out := []Certification{}
	err := c.doJSON(ctx, http.MethodGet, "/certifications", nil, &out)
	return out, err
}

func (c *Client) GetTestimonials(ctx context.Context) ([]Testimonial, error) {
	out := []Testimonial{}
	err := c.doJSON(ctx, http.MethodGet, "/testimonials", nil, &out)
	return out, err
}

func (c *Client) GetProcedures(ctx context.Context) ([]Procedure, error) {
	out := []Procedure{}
	err := c.doJSON(ctx, http.MethodGet, "/procedures", nil, &out)
	return out, err
}

func (c *Client) CreateProcedure(ctx context.Context, draft ProcedureDraft) (Procedure, error) {
	if draft.Tags == nil {
		draft.Tags = []string{}
	}
	var out Procedure
	err := c.doJSON(ctx, http.MethodPost, "/procedures", draft, &out)
	return out, err
}

func (c *Client) DeleteProcedure(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/procedures/"+id, nil, nil)
}

func (c *Client) CreateContactMessage(ctx context.Context, msg ContactMessageInput) error {
	return c.doJSON(ctx, http.MethodPost, "/contact-messages", msg, nil)
}

func (c *Client) GetVeilleContent(ctx context.Context) ([]VeilleContent, error) {
	out := []VeilleContent{}
	err := c.doJSON(ctx, http.MethodGet, "/veille", nil, &out)
	return out, err
}
