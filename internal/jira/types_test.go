package jira

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody_UnmarshalString(t *testing.T) {
	var f Fields
	err := json.Unmarshal([]byte(`{"summary":"S","description":"plain text body"}`), &f)
	require.NoError(t, err)

	assert.Equal(t, "plain text body", f.Description.Text)
	assert.Nil(t, f.Description.Doc)
}

func TestBody_UnmarshalADF(t *testing.T) {
	raw := `{
		"summary": "S",
		"description": {
			"type": "doc",
			"content": [
				{"type": "paragraph", "content": [{"type": "text", "text": "hello"}]}
			]
		}
	}`

	var f Fields
	err := json.Unmarshal([]byte(raw), &f)
	require.NoError(t, err)

	require.NotNil(t, f.Description.Doc)
	assert.Equal(t, "doc", f.Description.Doc.Type)
	require.Len(t, f.Description.Doc.Content, 1)
	assert.Equal(t, "paragraph", f.Description.Doc.Content[0].Type)
}

func TestBody_UnmarshalNullAndAbsent(t *testing.T) {
	for _, raw := range []string{`{"summary":"S","description":null}`, `{"summary":"S"}`} {
		var f Fields
		err := json.Unmarshal([]byte(raw), &f)
		require.NoError(t, err)
		assert.Empty(t, f.Description.Text)
		assert.Nil(t, f.Description.Doc)
	}
}
