package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndSanitizeJSON(t *testing.T) {
	raw := []byte(`{
		"full_name": "Jane Doe",
		"organisation": "Acme GmbH",
		"email": "Jane@Acme.COM",
		"phone": "+49 151 2345678",
		"title": "CEO",
		"notes": "met at fair",
		"address": null
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.Equal(t, "Jane Doe", m["name"])
	assert.Equal(t, "Acme GmbH", m["company"])
	assert.Equal(t, "jane@acme.com", m["email"])
	assert.Equal(t, "CEO", m["job_title"])
	assert.NotContains(t, m, "notes")
	assert.NotContains(t, m, "address")
	assert.Contains(t, dropped, "notes(unknown)")
}

func TestNormalizeAndSanitizeJSONDropsBadFormats(t *testing.T) {
	raw := []byte(`{"email": "not-an-email", "phone": "123"}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Empty(t, m)
	assert.Contains(t, dropped, "email(format)")
	assert.Contains(t, dropped, "phone(format)")
}

func TestKeepOnlyMissing(t *testing.T) {
	doc := []byte(`{"name": "Jane Doe", "company": "Acme", "confidence": 0.9}`)

	out, err := KeepOnlyMissing(doc, []string{"company"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "name")
	assert.Equal(t, "Acme", m["company"])
	assert.Equal(t, 0.9, m["confidence"])
}

func TestBuildContactJSONSchemaRestrictsToMissing(t *testing.T) {
	schema := BuildContactJSONSchema([]string{"email", "phone"})

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "email")
	assert.Contains(t, props, "phone")
	assert.Contains(t, props, "confidence")
	assert.NotContains(t, props, "name")

	valid := []byte(`{"email": "jane@acme.com"}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, valid))

	invalid := []byte(`{"name": "Jane"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, invalid))
}
