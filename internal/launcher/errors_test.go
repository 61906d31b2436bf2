package launcher

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cases := map[string]struct {
		err      *Error
		expected string
	}{
		"not authorized": {
			err:      NotAuthorizedError(),
			expected: `{"msg":"Not Authorized"}`,
		},
		"internal server error": {
			err:      InternalServerError(errors.New("cause")),
			expected: `{"msg":"Internal server error"}`,
		},
		"upstream error with html characters": {
			err:      NewError(`field <run_config> & "x"`, nil),
			expected: `{"msg":"field <run_config> & \"x\""}`,
		},
		"upstream error": {
			err:      NewError(`graphql: "run" not found`, nil),
			expected: `{"msg":"graphql: \"run\" not found"}`,
		},
	}

	for n, tc := range cases {
		t.Run(n, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.expected, tc.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	a := assert.New(t)
	cause := errors.New("connection refused")

	a.ErrorIs(NewError(cause.Error(), cause), cause)
	a.ErrorIs(InternalServerError(cause), cause)
	a.Nil(NotAuthorizedError().Unwrap())
}

func TestIsNotAuthorizedError(t *testing.T) {
	cases := map[string]struct {
		err      error
		expected bool
	}{
		"not authorized": {
			err:      NotAuthorizedError(),
			expected: true,
		},
		"wrapped not authorized": {
			err:      fmt.Errorf("handler: %w", NotAuthorizedError()),
			expected: true,
		},
		"internal server error": {
			err:      InternalServerError(nil),
			expected: false,
		},
		"errorString": {
			err:      errors.New("new errorString"),
			expected: false,
		},
	}

	for n, tc := range cases {
		t.Run(n, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.expected, IsNotAuthorizedError(tc.err))
		})
	}
}

func TestIsInternalServerError(t *testing.T) {
	cases := map[string]struct {
		err      error
		expected bool
	}{
		"internal server error": {
			err:      InternalServerError(errors.New("cause")),
			expected: true,
		},
		"not authorized": {
			err:      NotAuthorizedError(),
			expected: false,
		},
		"errorString": {
			err:      errors.New("new errorString"),
			expected: false,
		},
	}

	for n, tc := range cases {
		t.Run(n, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.expected, IsInternalServerError(tc.err))
		})
	}
}

func TestToJSON(t *testing.T) {
	a := assert.New(t)
	a.Equal(`{"run_id":"a<b>&c"}`, ToJSON(struct {
		RunID string `json:"run_id"`
	}{RunID: "a<b>&c"}))
}
