//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertWarning checks for a 199 Warning header, or for its absence when
// expected is false.
func AssertWarning(t *testing.T, w *httptest.ResponseRecorder, expected bool) {
	t.Helper()
	warning := w.Header().Get("Warning")
	if !expected {
		assert.Empty(t, warning, "unexpected Warning header")
		return
	}
	assert.True(t, strings.HasPrefix(warning, "199 - "), "Warning header %q should carry code 199", warning)
}
