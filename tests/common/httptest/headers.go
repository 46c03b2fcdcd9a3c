//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertClearedCookie checks that the response expires the named auth cookie.
func AssertClearedCookie(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()

	c := ExtractCookie(w, name)
	require.NotNil(t, c, "cookie %s not set", name)
	assert.Empty(t, c.Value, "cookie %s still carries a value", name)
	assert.Less(t, c.MaxAge, 0, "cookie %s not expired", name)
	assert.True(t, c.HttpOnly, "cookie %s must stay HttpOnly", name)
}
