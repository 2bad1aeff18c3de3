// Package chatpdf talks to the ChatPDF document question-answering API.
package chatpdf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

const defaultBaseURL = "https://api.chatpdf.com/v1"

// NoAnswer is the sentinel answer meaning "not found in the document".
// Ask returns it for explicit negative phrasing and for any provider or
// transport failure, so the two are indistinguishable downstream.
const NoAnswer = "None"

// promptPrefix rewrites every question into the canonical form that
// instructs the provider to answer concisely and emit the sentinel when
// the information is absent.
const promptPrefix = "Provide a direct, concise answer. If the information is not found in the document, respond with 'None'. "

// ErrUpload marks upload failures. Terminal for that document only.
var ErrUpload = errors.New("document upload failed")

// negativePhrases is the fixed list of provider phrasings normalized to
// NoAnswer. Matched as case-insensitive substrings.
var negativePhrases = []string{
	"cannot find",
	"no information",
	"not mentioned",
	"not specified",
	"not found",
	"not provided",
}

type Config struct {
	APIKey  string
	BaseURL string // optional override for tests
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     interfaces.Logger
}

func NewClient(cfg Config, log interfaces.Logger) interfaces.DocumentQA {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     log,
	}
}

// Upload sends the document bytes as a multipart body and returns the
// provider's source id for it.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: build multipart body: %v", ErrUpload, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: build multipart body: %v", ErrUpload, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: build multipart body: %v", ErrUpload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sources/add-file", &body)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrUpload, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: execute request: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", ErrUpload, resp.Status, string(respBody))
	}

	var uploadResp struct {
		SourceID string `json:"sourceId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpload, err)
	}
	if uploadResp.SourceID == "" {
		return "", fmt.Errorf("%w: missing sourceId in response", ErrUpload)
	}
	return uploadResp.SourceID, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type askRequest struct {
	SourceID string        `json:"sourceId"`
	Messages []chatMessage `json:"messages"`
}

// Ask poses one question against an uploaded document. The call is made
// exactly once; any failure degrades to NoAnswer rather than an error.
func (c *Client) Ask(ctx context.Context, sourceID, question string) string {
	reqBody := askRequest{
		SourceID: sourceID,
		Messages: []chatMessage{{Role: "user", Content: promptPrefix + question}},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Unable to marshal question request: %v", err))
		return NoAnswer
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chats/message", bytes.NewReader(jsonBody))
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Unable to create question request: %v", err))
		return NoAnswer
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Question request failed: %v", err))
		return NoAnswer
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Warn(fmt.Sprintf("Question request failed: %s - %s", resp.Status, string(respBody)))
		return NoAnswer
	}

	var askResp struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&askResp); err != nil {
		c.logger.Warn(fmt.Sprintf("Unable to decode answer: %v", err))
		return NoAnswer
	}

	return normalizeAnswer(askResp.Content)
}

// normalizeAnswer maps provider-native negative phrasings onto the
// sentinel value.
func normalizeAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	lower := strings.ToLower(answer)
	for _, phrase := range negativePhrases {
		if strings.Contains(lower, phrase) {
			return NoAnswer
		}
	}
	return answer
}
