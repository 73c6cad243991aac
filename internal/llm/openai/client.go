package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lbeckmann/cardvault/internal/llm"
)

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
// The schema only exposes the fields listed in req.MissingFields, so the model
// cannot overwrite what the heuristics already found.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.ContactFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.OCRText),
		"has_qr_payload", req.QRPayload != "",
		"missing_fields", req.MissingFields,
	)

	schema := llm.BuildContactJSONSchema(req.MissingFields)
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ContactFields{}, nil, err
	}
	rawContent := []byte(content)

	// Normalize first, then validate strictly.
	cleaned, _, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.log)
	if sErr != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", sErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ContactFields{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
	}
	if len(req.MissingFields) > 0 {
		if cleaned, sErr = llm.KeepOnlyMissing(cleaned, req.MissingFields); sErr != nil {
			return llm.ContactFields{}, rawContent, fmt.Errorf("restrict fields: %w", sErr)
		}
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ContactFields{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.ContactFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ContactFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"name", out.Name,
		"company", out.Company,
		"confidence", out.ModelConfidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

// DraftEmail implements llm.EmailDrafter.
func (c *Client) DraftEmail(ctx context.Context, req llm.DraftRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.draft.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"recipient", req.Contact.Name,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildDraftSystemPrompt(req)},
			{"role": "user", "content": llm.BuildDraftUserPrompt(req)},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("llm.draft.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	c.log.Info("llm.draft.ok",
		"req_id", rid,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

// chat posts a chat/completions body and returns the first choice's content.
func (c *Client) chat(ctx context.Context, body map[string]any) (string, error) {
	raw, err := c.postChat(ctx, body)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// postChat is the raw transport: one authenticated POST against
// /chat/completions. Non-2xx responses surface the API's own error message
// when one is present.
func (c *Client) postChat(ctx context.Context, body map[string]any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode chat body: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	c.log.Info("llm.openai.response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
				Type    string `json:"type"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("openai: %s (%s, status %d)", apiErr.Error.Message, apiErr.Error.Type, resp.StatusCode)
		}
		return nil, fmt.Errorf("openai: status %d", resp.StatusCode)
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
