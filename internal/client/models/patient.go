// Package models defines the patient record and the notification value
// shared by the store, the remote source and the CLI.
package models

import (
	"net/url"
	"strings"
	"time"
)

const (
	DefaultDescription = "No description available"
	DefaultWebsite     = "No website available"
	PlaceholderAvatar  = "https://placehold.co/100x100?text=Patient"
)

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Patient is a record held by the store. ID is unique within a store;
// CreatedAt is an ISO-8601 timestamp and may be empty for remote records
// that did not carry one.
type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	Description string `json:"description"`
	Website     string `json:"website"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Draft is a patient that has not been assigned an id yet.
type Draft struct {
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	Description string `json:"description"`
	Website     string `json:"website"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// WithID turns d into a Patient carrying id.
func (d Draft) WithID(id string) Patient {
	return Patient{
		ID:          id,
		Name:        d.Name,
		Avatar:      d.Avatar,
		Description: d.Description,
		Website:     d.Website,
		CreatedAt:   d.CreatedAt,
	}
}

// Draft drops the id.
func (p Patient) Draft() Draft {
	return Draft{
		Name:        p.Name,
		Avatar:      p.Avatar,
		Description: p.Description,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
	}
}

// AvatarURL returns the avatar when it is an absolute http(s) URL and the
// placeholder image otherwise.
func (p Patient) AvatarURL() string {
	u, err := url.Parse(strings.TrimSpace(p.Avatar))
	if err != nil || u.Host == "" {
		return PlaceholderAvatar
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.String()
	default:
		return PlaceholderAvatar
	}
}

// CreatedDate renders CreatedAt as a local calendar date. Values that do
// not parse are returned unchanged.
func (p Patient) CreatedDate(loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return p.CreatedAt
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("2006-01-02")
}

// Timestamp formats t the way CreatedAt values are stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient status message.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}
