package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	errInvalidResponse = errors.New("Invalid response from server")
	errUnknown         = errors.New("Unknown error")
)

// generateRemote asks a running server to build the course and returns
// the raw success body.
func generateRemote(ctx context.Context, client *http.Client, baseURL, token, videoURL string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{"url": videoURL})
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(baseURL, "/") + "/api/generate-course"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, errInvalidResponse
		}
		if body.Error == "" {
			return nil, errUnknown
		}
		return nil, errors.New(body.Error)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errInvalidResponse
	}
	return raw, nil
}
