package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString accepts a JSON string or number; null decodes to "".
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: unsupported value %s", string(data))
	}
	*s = FlexString(n.String())
	return nil
}

type CategoryRecord struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// PostRecord is one raw post as returned by any admin API endpoint. Category data
// arrives either nested (categoryBlog) or flat (category_id/category_name).
type PostRecord struct {
	ID           FlexString      `json:"id"`
	Topic        string          `json:"topic"`
	HTMLContent  string          `json:"htmlContent"`
	DeltaContent json.RawMessage `json:"deltaContent,omitempty"`
	Stamp        string          `json:"stamp"`
	View         *json.Number    `json:"view,omitempty"`
	Thumbnail    string          `json:"thumbnail"`
	AuthorID     *FlexString     `json:"author_id,omitempty"`
	CategoryBlog *CategoryRecord `json:"categoryBlog,omitempty"`
	CategoryID   *FlexString     `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
}

// PageEnvelope carries the post list under content or, on older endpoints, listData.
// A JSON null leaves the pointer nil.
type PageEnvelope struct {
	Content  *[]PostRecord `json:"content,omitempty"`
	ListData *[]PostRecord `json:"listData,omitempty"`
}

type ModerationRequest struct {
	Message string `json:"message"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}
