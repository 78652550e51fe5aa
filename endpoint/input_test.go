package endpoint

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputTakeBodyOnce(t *testing.T) {
	in := NewInput(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("payload")))
	assert.False(t, in.BodyTaken())

	body, err := in.TakeBody()
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.True(t, in.BodyTaken())

	_, err = in.TakeBody()
	assert.ErrorIs(t, err, ErrBodyTaken)
	assert.Equal(t, http.StatusInternalServerError, httperr.Status(err))
}

func TestInputMaxBodySize(t *testing.T) {
	in := NewInput(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	in.SetMaxBodySize(4)

	body, err := in.TakeBody()
	require.NoError(t, err)
	_, err = io.ReadAll(body)

	var tooLarge *http.MaxBytesError
	assert.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, http.StatusRequestEntityTooLarge, httperr.Status(err))
}

func TestInputMediaType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
		wantErr     bool
	}{
		{name: "missing", contentType: "", want: ""},
		{name: "with params", contentType: "application/json; charset=utf-8", want: "application/json"},
		{name: "malformed", contentType: "application/json; =", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}

			mt, _, err := NewInput(r).MediaType()
			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, httperr.Status(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mt)
		})
	}
}

func TestInputFinalize(t *testing.T) {
	in := NewInput(httptest.NewRequest(http.MethodGet, "/", nil))
	in.SetResponseHeader("X-Request", "1")
	in.AddResponseHeader("Vary", "Accept")
	in.AddResponseHeader("Vary", "Cookie")
	in.Cookies().Add(&http.Cookie{Name: "session", Value: "abc"})

	h := make(http.Header)
	in.Finalize(h)

	assert.Equal(t, "1", h.Get("X-Request"))
	assert.Equal(t, []string{"Accept", "Cookie"}, h.Values("Vary"))
	assert.Equal(t, []string{"session=abc"}, h.Values("Set-Cookie"))
}
