package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthorized(t *testing.T) {
	cases := map[string]struct {
		headers  map[string]string
		expected bool
	}{
		"matched signiture": {
			headers:  map[string]string{"Signiture": "secret"},
			expected: true,
		},
		"matched lowercase signiture": {
			headers:  map[string]string{"signiture": "secret"},
			expected: true,
		},
		"missing signiture": {
			headers: map[string]string{"Authorization": "secret"},
		},
		"nil headers": {},
		"corrected spelling is not accepted": {
			headers: map[string]string{"Signature": "secret"},
		},
		"mismatched signiture": {
			headers: map[string]string{"Signiture": "secre"},
		},
		"empty signiture": {
			headers: map[string]string{"Signiture": ""},
		},
	}

	for n, tc := range cases {
		t.Run(n, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.expected, isAuthorized(tc.headers, "secret"))
		})
	}
}
