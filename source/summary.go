package source

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Summary is a single search hit.
// Which optional fields are filled depends on the site it came from.
type Summary struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url,omitempty"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Duration  Text   `json:"duration,omitempty"`
	Views     Text   `json:"views,omitempty"`
	Added     Text   `json:"added,omitempty"`
	Rating    Text   `json:"rating,omitempty"`
	Source    string `json:"source"`
}

// Identifier is the value to pass to Source.VariantsOf.
// Sites that key videos by page URL have no id, so the URL is used instead.
func (s *Summary) Identifier() string {
	if s.ID != "" {
		return s.ID
	}
	return s.URL
}

// String returns the title for display.
func (s *Summary) String() string {
	return s.Title
}

// Text is a display scalar that upstreams send either as a JSON string or a number.
type Text string

// UnmarshalJSON accepts strings, numbers and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	if i, err := n.Int64(); err == nil {
		*t = Text(strconv.FormatInt(i, 10))
		return nil
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}
