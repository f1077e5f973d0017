package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("writes payload with status and content type", func(t *testing.T) {
		w := httptest.NewRecorder()

		n, err := WriteJSON(w, map[string]string{"status": "ok"}, 201)

		require.NoError(t, err)
		assert.Positive(t, n)
		assert.Equal(t, 201, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		w := httptest.NewRecorder()

		_, err := WriteJSON(w, func() {}, 200)

		require.Error(t, err)
		assert.Equal(t, 500, w.Code)
	})
}
