package endpoint

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-finchers/httperr"
)

// DefaultMaxBodySize is the request body limit used when none is configured.
const DefaultMaxBodySize int64 = 10 << 20

// Input is the incoming request together with the state accumulated while
// it is being handled. It is shared by every endpoint and action of a single
// request and is safe for concurrent use by those actions.
type Input struct {
	request  *http.Request
	segments []string

	maxBodySize int64

	mu             sync.Mutex
	bodyTaken      bool
	mediaTypeDone  bool
	mediaType      string
	mediaParams    map[string]string
	mediaTypeErr   error
	cookies        *CookieJar
	responseHeader http.Header
}

// NewInput creates the Input of r, splitting the escaped URL path into
// segments. Empty segments are skipped.
func NewInput(r *http.Request) *Input {
	return NewInputWithPath(r, r.URL.EscapedPath())
}

// NewInputWithPath is like [NewInput] but matches against path instead of the
// request URL. It is used when the service is mounted below a prefix.
func NewInputWithPath(r *http.Request, path string) *Input {
	return &Input{
		request:     r,
		segments:    splitPath(path),
		maxBodySize: DefaultMaxBodySize,
	}
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Request returns the underlying request.
func (in *Input) Request() *http.Request {
	return in.request
}

// Method returns the request method.
func (in *Input) Method() string {
	return in.request.Method
}

// Header returns the request headers.
func (in *Input) Header() http.Header {
	return in.request.Header
}

// SetMaxBodySize changes the limit applied by [Input.TakeBody].
// A non-positive n disables the limit.
func (in *Input) SetMaxBodySize(n int64) {
	in.maxBodySize = n
}

// MediaType parses the Content-Type header. The result is cached. A missing
// header yields an empty media type and no error.
func (in *Input) MediaType() (string, map[string]string, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.mediaTypeDone {
		in.mediaTypeDone = true
		if raw := in.request.Header.Get("Content-Type"); raw != "" {
			mt, params, err := mime.ParseMediaType(raw)
			if err != nil {
				in.mediaTypeErr = httperr.BadRequest(fmt.Errorf("invalid Content-Type: %w", err))
			} else {
				in.mediaType, in.mediaParams = mt, params
			}
		}
	}

	return in.mediaType, in.mediaParams, in.mediaTypeErr
}

// TakeBody hands out the request body, limited to the configured size.
// The body can be taken only once; later calls fail with [ErrBodyTaken].
func (in *Input) TakeBody() (io.ReadCloser, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.bodyTaken {
		return nil, httperr.Internal(ErrBodyTaken)
	}
	in.bodyTaken = true

	body := in.request.Body
	if body == nil {
		body = http.NoBody
	}
	if in.maxBodySize > 0 {
		body = http.MaxBytesReader(nil, body, in.maxBodySize)
	}
	return body, nil
}

// BodyTaken reports whether the body has been handed out.
func (in *Input) BodyTaken() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.bodyTaken
}

// Cookies returns the cookie jar of the request, creating it on first use.
func (in *Input) Cookies() *CookieJar {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.cookies == nil {
		in.cookies = newCookieJar(in.request)
	}
	return in.cookies
}

// SetResponseHeader sets a header which is added to the final response.
func (in *Input) SetResponseHeader(key, value string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.responseHeader == nil {
		in.responseHeader = make(http.Header)
	}
	in.responseHeader.Set(key, value)
}

// AddResponseHeader appends a header value to the final response.
func (in *Input) AddResponseHeader(key, value string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.responseHeader == nil {
		in.responseHeader = make(http.Header)
	}
	in.responseHeader.Add(key, value)
}

// Finalize copies the accumulated response headers and the cookie delta into
// h. It must be called before the response status is written.
func (in *Input) Finalize(h http.Header) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for k, values := range in.responseHeader {
		for _, v := range values {
			h.Add(k, v)
		}
	}

	if in.cookies != nil {
		for _, c := range in.cookies.Delta() {
			if v := c.String(); v != "" {
				h.Add("Set-Cookie", v)
			}
		}
	}
}
