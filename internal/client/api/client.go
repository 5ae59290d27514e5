// Package api is the REST client for the FitZone backend. Every call decodes
// the JSON body, and non-2xx responses become an *APIError carrying the
// server's message and structured code.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ianishdubey/FitZoneBack/internal/models"
)

// TokenProvider supplies the current bearer token, or "" when the session is
// anonymous. The session store implements it.
type TokenProvider interface {
	Token() string
}

type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

func New(baseURL string, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

type UserSummary struct {
	ID                int64    `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	MembershipType    string   `json:"membershipType"`
	PurchasedPrograms []string `json:"purchasedPrograms,omitempty"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

type ProfileUpdate struct {
	FirstName *string         `json:"firstName,omitempty"`
	LastName  *string         `json:"lastName,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	Profile   *models.Profile `json:"profile,omitempty"`
}

type InquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodGet, "/api/user/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	if err := c.doRequest(ctx, http.MethodPut, "/api/user/profile", update, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Programs(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := c.doRequest(ctx, http.MethodGet, "/api/programs", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (c *Client) PurchaseProgram(ctx context.Context, programID string) error {
	path := fmt.Sprintf("/api/programs/%s/purchase", programID)
	return c.doRequest(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) PurchasedPrograms(ctx context.Context) ([]string, error) {
	var resp struct {
		PurchasedPrograms []string `json:"purchasedPrograms"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/user/programs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.PurchasedPrograms, nil
}

func (c *Client) CreateMembership(ctx context.Context, planType string, amount float64) (*models.Membership, error) {
	body := map[string]any{"planType": planType, "amount": amount}
	var resp struct {
		Message    string            `json:"message"`
		Membership models.Membership `json:"membership"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/api/memberships", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Membership, nil
}

func (c *Client) SubmitInquiry(ctx context.Context, input InquiryInput) (string, error) {
	var resp struct {
		Message   string `json:"message"`
		InquiryID string `json:"inquiryId"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/api/contact", input, &resp); err != nil {
		return "", err
	}
	return resp.InquiryID, nil
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: "API request failed"}
		var envelope struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
			apiErr.Code = envelope.Code
		}
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}
