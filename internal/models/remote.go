package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// RemoteProject is a project record as returned by the deployment host.
type RemoteProject struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Framework         string             `json:"framework,omitempty"`
	LatestDeployments []RemoteDeployment `json:"latestDeployments,omitempty"`
}

// RemoteDeployment is one entry of a remote project's deployment history.
type RemoteDeployment struct {
	URL       string    `json:"url"`
	State     string    `json:"state,omitempty"`
	Alias     []string  `json:"alias,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// RemoteProjectList is the body of the project listing endpoint.
type RemoteProjectList struct {
	Projects []RemoteProject `json:"projects"`
}

// Timestamp holds a deployment creation time. The API sends epoch
// milliseconds, older payloads carry a plain string; both are accepted.
type Timestamp struct {
	raw    string
	millis int64
	valid  bool
}

// NewTimestampMillis builds a Timestamp from epoch milliseconds.
func NewTimestampMillis(ms int64) Timestamp {
	return Timestamp{
		raw:    time.UnixMilli(ms).UTC().Format(time.RFC3339),
		millis: ms,
		valid:  true,
	}
}

// NewTimestampString builds a Timestamp from its textual form.
func NewTimestampString(s string) Timestamp {
	ts := Timestamp{raw: s}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		ts.millis = t.UnixMilli()
		ts.valid = true
	}
	return ts
}

// String returns RFC 3339 for numeric input and the raw text otherwise.
func (t Timestamp) String() string {
	return t.raw
}

// Millis reports the time in epoch milliseconds when it could be parsed.
func (t Timestamp) Millis() (int64, bool) {
	return t.millis, t.valid
}

// IsZero reports whether no timestamp was present.
func (t Timestamp) IsZero() bool {
	return t.raw == ""
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
		*t = NewTimestampString(s)
		return nil
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return fmt.Errorf("invalid timestamp %s: %w", data, err)
		}
		ms = int64(f)
	}
	*t = NewTimestampMillis(ms)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(t.raw)
}
