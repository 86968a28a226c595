package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

// AzureOpenAI talks to an Azure OpenAI deployment over the chat-completions
// wire protocol. Any OpenAI-compatible endpoint that honors the api-key header
// and api-version query parameter works as well.
type AzureOpenAI struct {
	endpoint   string // e.g. "https://my-resource.openai.azure.com"
	apiKey     string
	apiVersion string
	deployment string
	client     *http.Client // reused across calls
}

// Compile-time check: *AzureOpenAI satisfies the Gateway interface.
var _ Gateway = (*AzureOpenAI)(nil)

// NewAzureOpenAI creates a gateway for the given deployment.
func NewAzureOpenAI(endpoint, apiKey, apiVersion, deployment string) *AzureOpenAI {
	return &AzureOpenAI{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		apiVersion: apiVersion,
		deployment: deployment,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Gateway interface
// ============================================================================

// Complete sends a plain chat completion and returns the trimmed content of
// the first choice.
func (g *AzureOpenAI) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	content, err := g.call(ctx, chatRequest{
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", &Error{Reason: "response contained empty content"}
	}
	return strings.TrimSpace(content), nil
}

// Parse sends a chat completion constrained to the JSON schema reflected from
// out, then unmarshals the returned content into out.
func (g *AzureOpenAI) Parse(ctx context.Context, messages []Message, schemaName string, out any, temperature float64) error {
	content, err := g.call(ctx, chatRequest{
		Messages:    messages,
		Temperature: temperature,
		ResponseFormat: &responseFormat{
			Type: "json_schema",
			JSONSchema: &schemaEnvelope{
				Name:   schemaName,
				Strict: true,
				Schema: reflectSchema(out),
			},
		},
	})
	if err != nil {
		return err
	}
	if content == "" {
		return &Error{Reason: "response missing structured payload"}
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &Error{Reason: "structured payload failed validation", Wrapped: err}
	}
	return nil
}

// ============================================================================
// Wire types
// ============================================================================

type chatRequest struct {
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *schemaEnvelope `json:"json_schema,omitempty"`
}

type schemaEnvelope struct {
	Name   string             `json:"name"`
	Strict bool               `json:"strict"`
	Schema *jsonschema.Schema `json:"schema"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// reflector is configured for strict structured outputs: inlined definitions,
// no $ref indirection, additionalProperties false.
var reflector = jsonschema.Reflector{
	DoNotReference: true,
	ExpandedStruct: true,
}

// anonReflector handles unnamed struct types. ExpandedStruct looks the root
// type up by name, so it cannot be used for anonymous structs.
var anonReflector = jsonschema.Reflector{
	DoNotReference: true,
}

func reflectSchema(out any) *jsonschema.Schema {
	t := reflect.TypeOf(out)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return anonReflector.Reflect(out)
	}
	return reflector.Reflect(out)
}

// call sends a single chat-completions request and returns the raw content of
// the first choice. All failures surface as *Error.
func (g *AzureOpenAI) call(ctx context.Context, body chatRequest) (string, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", &Error{Reason: "failed to marshal request", Wrapped: err}
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		g.endpoint, g.deployment, g.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &Error{Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &Error{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Reason: fmt.Sprintf("remote service returned status %d", resp.StatusCode)}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &Error{Reason: "failed to decode response", Wrapped: err}
	}

	if len(chatResp.Choices) == 0 {
		return "", &Error{Reason: "response contained no choices"}
	}

	return chatResp.Choices[0].Message.Content, nil
}
