package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/velvetresearch/velvet/internal/client/staging"
)

// Collaborator endpoint paths, exactly as the client sketch targets them.
const (
	loginPath            = "/api/auth/login"
	registerPath         = "/api/auth/register"
	uploadPath           = "/api/upload"
	generatePath         = "/api/generate"
	referralGeneratePath = "/api/referral/generate"
	referralInvitePath   = "/api/referral/invite"
)

// HTTPClient implements Client over HTTP/JSON with multipart uploads.
//
// No request timeout is applied, matching the sketch: a request that never
// resolves leaves the caller suspended. Callers may still cancel through
// the context.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type uploadResponse struct {
	UploadID string `json:"upload_id"`
}

type generateRequest struct {
	UploadID string `json:"upload_id"`
}

type generateResponse struct {
	JobID string `json:"job_id"`
}

type referralCodeResponse struct {
	ReferralCode string `json:"referral_code"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.postJSON(ctx, loginPath, credentialsRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.postJSON(ctx, registerPath, credentialsRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *HTTPClient) Upload(ctx context.Context, files []staging.StagedFile) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := mw.CreateFormFile("files", f.Name)
		if err != nil {
			return "", fmt.Errorf("multipart part for %s: %w", f.Name, err)
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", f.Name, err)
		}
		_, err = io.Copy(part, rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.UploadID, nil
}

func (c *HTTPClient) Generate(ctx context.Context, uploadID string) (string, error) {
	var out generateResponse
	if err := c.postJSON(ctx, generatePath, generateRequest{UploadID: uploadID}, &out); err != nil {
		return "", err
	}
	return out.JobID, nil
}

func (c *HTTPClient) GenerateReferralCode(ctx context.Context) (string, error) {
	var out referralCodeResponse
	if err := c.postJSON(ctx, referralGeneratePath, nil, &out); err != nil {
		return "", err
	}
	return out.ReferralCode, nil
}

func (c *HTTPClient) SendInvite(ctx context.Context, email string) error {
	return c.postJSON(ctx, referralInvitePath, inviteRequest{Email: email}, nil)
}

// postJSON sends body (may be nil) as JSON and decodes a success response
// into out (may be nil).
func (c *HTTPClient) postJSON(ctx context.Context, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s: %w", path, err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do executes the request with the bearer token attached and maps the
// response: 2xx decodes into out, 401 becomes ErrUnauthorized, any other
// non-success status becomes an *APIError carrying the detail verbatim,
// and transport failures become ErrUnavailable.
func (c *HTTPClient) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// readDetail extracts the collaborator's {"detail": …} message, falling
// back to the HTTP status text when the body carries none.
func readDetail(resp *http.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err == nil && json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	return http.StatusText(resp.StatusCode)
}
