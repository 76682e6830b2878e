package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftWithIDRoundTrip(t *testing.T) {
	d := Draft{Name: "Jane", Avatar: "https://a/b.png", Description: "d", Website: "https://x.com", CreatedAt: "2024-01-01T00:00:00.000Z"}

	p := d.WithID("7")
	require.Equal(t, "7", p.ID)
	assert.Equal(t, d, p.Draft())
}

func TestAvatarURL_FallsBackToPlaceholder(t *testing.T) {
	tests := []struct {
		avatar string
		want   string
	}{
		{"https://cdn.example/a.jpg", "https://cdn.example/a.jpg"},
		{"  http://cdn.example/a.jpg ", "http://cdn.example/a.jpg"},
		{"", PlaceholderAvatar},
		{"not a url", PlaceholderAvatar},
		{"ftp://cdn.example/a.jpg", PlaceholderAvatar},
		{"/relative/a.jpg", PlaceholderAvatar},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Patient{Avatar: tt.avatar}.AvatarURL(), tt.avatar)
	}
}

func TestCreatedDate(t *testing.T) {
	p := Patient{CreatedAt: "2023-01-11T14:05:31.123Z"}
	assert.Equal(t, "2023-01-11", p.CreatedDate(time.UTC))

	east := time.FixedZone("east", 12*60*60)
	assert.Equal(t, "2023-01-12", p.CreatedDate(east))

	assert.Equal(t, "yesterday", Patient{CreatedAt: "yesterday"}.CreatedDate(time.UTC))
}

func TestTimestamp_MatchesISOString(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 10_000_000, time.FixedZone("x", 3600))
	assert.Equal(t, "2024-03-05T06:08:09.010Z", Timestamp(ts))
}
