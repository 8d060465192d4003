package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{PostStatusDraft, PostStatusScheduled, true},
		{PostStatusScheduled, PostStatusPublishing, true},
		{PostStatusScheduled, PostStatusDraft, true},
		{PostStatusPublishing, PostStatusPublished, true},
		{PostStatusPublishing, PostStatusFailed, true},
		{PostStatusFailed, PostStatusScheduled, true},

		{PostStatusDraft, PostStatusPublishing, false},
		{PostStatusDraft, PostStatusPublished, false},
		{PostStatusPublished, PostStatusScheduled, false},
		{PostStatusPublished, PostStatusFailed, false},
		{PostStatusScheduled, PostStatusPublished, false},
		{PostStatusFailed, PostStatusPublishing, false},
		{"bogus", PostStatusScheduled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{PostStatusDraft, PostStatusScheduled, PostStatusPublishing, PostStatusPublished, PostStatusFailed} {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}

func TestIsSupportedPlatform(t *testing.T) {
	for _, platform := range SupportedPlatforms {
		assert.True(t, IsSupportedPlatform(platform), platform)
	}
	assert.False(t, IsSupportedPlatform("youtube"))
	assert.False(t, IsSupportedPlatform(""))
}
