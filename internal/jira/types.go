package jira

import "encoding/json"

// Issue represents a JIRA issue from the REST API v3.
type Issue struct {
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

// Fields contains the issue fields we care about.
type Fields struct {
	Summary     string    `json:"summary"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Description Body      `json:"description,omitempty"`
}

// Status represents a JIRA status.
type Status struct {
	Name string `json:"name"`
}

// Priority represents a JIRA priority.
type Priority struct {
	Name string `json:"name"`
}

// Body holds an issue description, which the API returns either as a plain
// string (REST v2 instances) or as an Atlassian Document Format tree (v3).
// At most one of the two fields is set; both zero means no description.
type Body struct {
	Text string
	Doc  *ADFNode
}

// UnmarshalJSON accepts a JSON string, an ADF object, or null.
func (b *Body) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.Text)
	}
	var node ADFNode
	if err := json.Unmarshal(data, &node); err != nil {
		return err
	}
	b.Doc = &node
	return nil
}

// MarshalJSON emits the same shape the API produced.
func (b Body) MarshalJSON() ([]byte, error) {
	if b.Doc != nil {
		return json.Marshal(b.Doc)
	}
	return json.Marshal(b.Text)
}

// ADFNode represents a node in the Atlassian Document Format.
type ADFNode struct {
	Type    string         `json:"type"`
	Content []ADFNode      `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []ADFMark      `json:"marks,omitempty"`
}

// ADFMark represents an inline formatting mark in ADF.
type ADFMark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// SearchResponse is the response from GET /rest/api/3/search.
type SearchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}
