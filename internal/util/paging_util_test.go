package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		raw      string
		expected int
	}{
		{"", 5},
		{"abc", 5},
		{"0", 5},
		{"-3", 5},
		{"1", 1},
		{"20", 20},
		{"100", 100},
		{"101", 100},
		{"999999999", 100},
		{"2.5", 5},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, ParseLimit(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseOffset(t *testing.T) {
	testCases := []struct {
		raw      string
		expected int
	}{
		{"", 0},
		{"x", 0},
		{"-1", 0},
		{"0", 0},
		{"15", 15},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, ParseOffset(tc.raw), "raw=%q", tc.raw)
	}
}

func TestSessionUserIDContext(t *testing.T) {
	_, ok := GetSessionUserIDFromContext(context.Background())
	require.False(t, ok)

	_, ok = GetSessionUserIDFromContext(WithSessionUserID(context.Background(), 0))
	require.False(t, ok)

	id, ok := GetSessionUserIDFromContext(WithSessionUserID(context.Background(), 42))
	require.True(t, ok)
	require.Equal(t, 42, id)
}
