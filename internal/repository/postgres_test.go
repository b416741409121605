package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
		ok       bool
	}{
		{name: "municipality and block", query: "千代田区丸の内", expected: "%千代田区丸の内%", ok: true},
		{name: "prefecture and municipality", query: "東京都千代田区", expected: "%東京都千代田区%", ok: true},
		{name: "spaces removed", query: " 東京都 千代田区　丸の内 ", expected: "%東京都千代田区丸の内%", ok: true},
		{name: "wildcards escaped", query: "100%_off", expected: `%100\%\_off%`, ok: true},
		{name: "backslash escaped", query: `a\b`, expected: `%a\\b%`, ok: true},
		{name: "blank", query: " 　", ok: false},
		{name: "empty", query: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, ok := searchPattern(tt.query)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, pattern)
		})
	}
}
