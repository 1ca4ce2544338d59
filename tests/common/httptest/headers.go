//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks every expected header. An empty expected value means
// the header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		got, present := w.Header()[http.CanonicalHeaderKey(name)]
		if want == "" {
			assert.False(t, present, "header %s should not be set, got %v", name, got)
			continue
		}
		assert.Equal(t, want, w.Header().Get(name), "header %s", name)
	}
}
