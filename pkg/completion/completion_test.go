package completion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model          string `json:"model"`
	Store          bool   `json:"store"`
	ResponseFormat *struct {
		Type       string `json:"type"`
		JSONSchema struct {
			Name   string `json:"name"`
			Strict bool   `json:"strict"`
		} `json:"json_schema"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
	return string(body)
}

func newFakeProvider(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: srv.URL + "/v1",
		Store:   true,
	}, ectologger.NewEctoLogger(func(ectologger.EctoLogMessage) {}))
}

var testPrompt = prompts.Prompt{System: "system text", User: "Output in English:"}

func TestComplete_ReturnsContent(t *testing.T) {
	var captured capturedRequest
	srv := newFakeProvider(t, http.StatusOK, chatResponse("You two get along well."), &captured)

	content, err := newTestClient(srv).Complete(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, "You two get along well.", content)
	assert.Equal(t, "gpt-4o", captured.Model)
	assert.True(t, captured.Store)
	assert.Nil(t, captured.ResponseFormat)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system text", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Output in English:", captured.Messages[1].Content)
}

func TestComplete_UpstreamErrorKeepsMessage(t *testing.T) {
	srv := newFakeProvider(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`, nil)

	_, err := newTestClient(srv).Complete(context.Background(), testPrompt)

	var svcErr *errors.CompletionServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Incorrect API key provided", svcErr.Message)
}

func TestComplete_NoChoices(t *testing.T) {
	srv := newFakeProvider(t, http.StatusOK,
		`{"id":"x","object":"chat.completion","created":1,"model":"gpt-4o","choices":[]}`, nil)

	_, err := newTestClient(srv).Complete(context.Background(), testPrompt)

	var fmtErr *errors.CompletionFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestCompleteStructured_DecodesReplyOptions(t *testing.T) {
	var captured capturedRequest
	srv := newFakeProvider(t, http.StatusOK,
		chatResponse(`{"option1":"a","option2":"b","option3":"c","option4":"d"}`), &captured)

	schema := MustSchema("reply_options", models.ReplyOptions{})
	var out models.ReplyOptions
	err := newTestClient(srv).CompleteStructured(context.Background(), testPrompt, schema, &out)

	require.NoError(t, err)
	assert.Equal(t, models.ReplyOptions{Option1: "a", Option2: "b", Option3: "c", Option4: "d"}, out)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_schema", captured.ResponseFormat.Type)
	assert.Equal(t, "reply_options", captured.ResponseFormat.JSONSchema.Name)
	assert.True(t, captured.ResponseFormat.JSONSchema.Strict)
}

func TestCompleteStructured_MissingFieldIsFormatError(t *testing.T) {
	srv := newFakeProvider(t, http.StatusOK, chatResponse(`{"option1":"a","option2":"b","option3":"c"}`), nil)

	schema := MustSchema("reply_options", models.ReplyOptions{})
	var out models.ReplyOptions
	err := newTestClient(srv).CompleteStructured(context.Background(), testPrompt, schema, &out)

	var fmtErr *errors.CompletionFormatError
	require.ErrorAs(t, err, &fmtErr)
}

func TestCompleteStructured_EmptyStringIsFormatError(t *testing.T) {
	srv := newFakeProvider(t, http.StatusOK, chatResponse(`{"content":""}`), nil)

	schema := MustSchema("chat_strategy", models.StrategyContent{})
	var out models.StrategyContent
	err := newTestClient(srv).CompleteStructured(context.Background(), testPrompt, schema, &out)

	var fmtErr *errors.CompletionFormatError
	require.ErrorAs(t, err, &fmtErr)
}

func TestCompleteStructured_NotJSON(t *testing.T) {
	srv := newFakeProvider(t, http.StatusOK, chatResponse("sure! here you go"), nil)

	schema := MustSchema("chat_strategy", models.StrategyContent{})
	var out models.StrategyContent
	err := newTestClient(srv).CompleteStructured(context.Background(), testPrompt, schema, &out)

	var fmtErr *errors.CompletionFormatError
	require.ErrorAs(t, err, &fmtErr)
}
