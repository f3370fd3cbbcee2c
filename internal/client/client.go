package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dantexito/Taller3-OS/internal/requests"
	"github.com/Dantexito/Taller3-OS/internal/responses"
)

// Client talks to a running scheduler API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: &http.Client{}}
}

func (c *Client) FirstComeFirstServe(ctx context.Context, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/fcfs", request, &response)
	return response, err
}

func (c *Client) RoundRobin(ctx context.Context, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/rr", request, &response)
	return response, err
}

func (c *Client) All(ctx context.Context, request requests.ScheduleRequests) (responses.AllResponse, error) {
	var response responses.AllResponse
	err := c.post(ctx, "/api/v1/all", request, &response)
	return response, err
}

func (c *Client) post(ctx context.Context, path string, requestBody, responseBody interface{}) error {
	body, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %d %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(data, responseBody); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
