package Assistant

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// FallbackMessage is appended verbatim whenever the text-generation
// service fails. The doctor sees no distinction between a genuine and a
// fallback answer.
const FallbackMessage = "Based on the symptoms described, this could be a case of a viral infection or migraine. I recommend rest, hydration, and monitoring temperature. If symptoms persist for more than 3 days or worsen, further examination would be necessary."

const promptFrame = "You are a medical assistant helping a doctor. Based on this conversation:\n%s\n\nProvide a helpful medical suggestion or possible diagnosis:"

// BuildPrompt frames the last few messages of a conversation for the
// completion request.
func BuildPrompt(recentMessages []string) string {
	return fmt.Sprintf(promptFrame, strings.Join(recentMessages, "\n"))
}

// Client talks to an OpenAI-compatible chat-completions endpoint with
// streaming enabled.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewClientFromEnv() *Client {
	model := os.Getenv("ASSISTANT_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return &Client{
		BaseURL:    os.Getenv("ASSISTANT_URL"),
		APIKey:     os.Getenv("ASSISTANT_API_KEY"),
		Model:      model,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type completionRequest struct {
	Model    string              `json:"model"`
	Stream   bool                `json:"stream"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Complete requests a streamed completion. Every fragment is handed to
// onChunk in arrival order; the assembled full text is returned once the
// stream terminates. Any failure comes back as an error, never a panic.
func (client *Client) Complete(ctx context.Context, prompt string, onChunk func(string)) (string, error) {
	if client.BaseURL == "" {
		return "", errors.New("assistant service not configured")
	}

	payload, err := json.Marshal(completionRequest{
		Model:    client.Model,
		Stream:   true,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if client.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+client.APIKey)
	}

	httpClient := client.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("assistant service returned %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var full strings.Builder
	scanner := bufio.NewScanner(res.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return "", fmt.Errorf("malformed stream chunk: %w", err)
		}
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			full.WriteString(choice.Delta.Content)
			if onChunk != nil {
				onChunk(choice.Delta.Content)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return full.String(), nil
}
