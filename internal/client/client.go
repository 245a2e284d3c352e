// Package client is the typed Go client for the Utsav registration API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rajaram-gurukul/utsav-registration/internal/form"
)

// APIError is a non-2xx response from the backend. The request that caused
// it can be retried by the user; client state is never lost.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL, e.g. "https://api.example.org".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
			if apiErr.Message == "" {
				apiErr.Message = errBody.Detail
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// SubmitRegistration posts a finished form payload. It satisfies
// form.Submitter so a form session can submit through this client directly.
func (c *Client) SubmitRegistration(ctx context.Context, payload form.SubmissionPayload) error {
	return c.do(ctx, http.MethodPost, "/api/registration", payload, nil)
}

// Registrations fetches the registrations booked under the given email.
func (c *Client) Registrations(ctx context.Context, email string) ([]RegistrationRecord, error) {
	var out struct {
		Registrations []RegistrationRecord `json:"registrations"`
	}
	path := "/api/registrations/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Registrations, nil
}

// UpdateRegistration replaces a stored registration. The record must carry
// its identity fields (bookers_email, bookers_phone, name).
func (c *Client) UpdateRegistration(ctx context.Context, rec RegistrationRecord) error {
	return c.do(ctx, http.MethodPut, "/api/update-registration", rec, nil)
}

// DeleteRegistration removes one participant's registration.
func (c *Client) DeleteRegistration(ctx context.Context, bookersEmail, bookersPhone, name string) error {
	body := map[string]string{
		"bookers_email": bookersEmail,
		"bookers_phone": bookersPhone,
		"name":          name,
	}
	return c.do(ctx, http.MethodDelete, "/api/delete-registration", body, nil)
}

// AdminStatus is the backend's answer to a check-admin lookup. Control type
// "Q" grants edit and delete rights; any other value is view-only.
type AdminStatus struct {
	IsAdmin     bool   `json:"is_admin"`
	ControlType string `json:"control_type"`
}

func (s AdminStatus) CanModerate() bool {
	return s.IsAdmin && s.ControlType == "Q"
}

func (c *Client) CheckAdmin(ctx context.Context, email string) (AdminStatus, error) {
	var out AdminStatus
	path := "/api/check-admin/" + url.PathEscape(email)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// AllRegistrations lists every registration, for admin moderation.
func (c *Client) AllRegistrations(ctx context.Context) ([]RegistrationRecord, error) {
	var out struct {
		Registrations []RegistrationRecord `json:"registrations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/all-registrations", nil, &out); err != nil {
		return nil, err
	}
	return out.Registrations, nil
}

// Analytics fetches the per-date aggregate counts computed by the backend.
func (c *Client) Analytics(ctx context.Context) ([]DailyAnalytics, error) {
	var out struct {
		Analytics []DailyAnalytics `json:"analytics"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/analytics", nil, &out); err != nil {
		return nil, err
	}
	return out.Analytics, nil
}

// DetailedAnalytics fetches the backend's per-category participant lists.
func (c *Client) DetailedAnalytics(ctx context.Context) (DetailedAnalytics, error) {
	var out DetailedAnalytics
	err := c.do(ctx, http.MethodGet, "/api/admin/detailed-analytics", nil, &out)
	return out, err
}

// PlaceOrder submits one book order line item. Multi-book orders are one
// call per book.
func (c *Client) PlaceOrder(ctx context.Context, order BookOrder) error {
	return c.do(ctx, http.MethodPost, "/api/shop-order", order, nil)
}

// DeleteOrder cancels a book order line item.
func (c *Client) DeleteOrder(ctx context.Context, emailID, name, contact, bookName string) error {
	body := map[string]string{
		"email_id":  emailID,
		"name":      name,
		"contact":   contact,
		"book_name": bookName,
	}
	return c.do(ctx, http.MethodDelete, "/api/shop-order", body, nil)
}

// Orders fetches the book orders placed under the given email.
func (c *Client) Orders(ctx context.Context, email string) ([]BookOrder, error) {
	var out struct {
		Orders []BookOrder `json:"orders"`
	}
	path := "/api/shop-orders/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}
