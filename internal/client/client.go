package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"honorsinventory/internal/domain"
)

// Client talks to the inventory REST API.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (%d %s)", e.Message, e.StatusCode, e.Code)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) ListEquipment(ctx context.Context) ([]domain.EquipmentView, error) {
	var out []domain.EquipmentView
	if err := c.do(ctx, http.MethodGet, "/equipment", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEquipment(ctx context.Context, id int64) (*domain.EquipmentView, error) {
	var out domain.EquipmentView
	if err := c.do(ctx, http.MethodGet, equipmentPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEquipment(ctx context.Context, req domain.CreateEquipmentRequest) (*domain.EquipmentView, error) {
	var out domain.EquipmentView
	if err := c.do(ctx, http.MethodPost, "/equipment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id int64, req domain.UpdateEquipmentRequest) (*domain.EquipmentView, error) {
	var out domain.EquipmentView
	if err := c.do(ctx, http.MethodPut, equipmentPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, equipmentPath(id), nil, nil)
}

func (c *Client) TransferEquipment(ctx context.Context, id, newLocationID int64) (*domain.EquipmentView, error) {
	var out domain.EquipmentView
	body := domain.TransferEquipmentRequest{NewLocationID: &newLocationID}
	if err := c.do(ctx, http.MethodPut, equipmentPath(id)+"/transfer", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var out []domain.Location
	if err := c.do(ctx, http.MethodGet, "/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListEquipmentTypes(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/equipment-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadReport copies the xlsx summary report into w.
func (c *Client) DownloadReport(ctx context.Context, w io.Writer) error {
	resp, err := c.send(ctx, http.MethodGet, "/reports/equipment.xlsx", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// send performs the request and turns non-2xx answers into *APIError. The
// caller closes the body of a successful response.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	return nil, decodeAPIError(resp)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err := json.Unmarshal(raw, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func equipmentPath(id int64) string {
	return "/equipment/" + strconv.FormatInt(id, 10)
}
