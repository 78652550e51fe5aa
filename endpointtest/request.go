package endpointtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
)

// Request builds a synthetic request.
type Request struct {
	method  string
	target  string
	header  http.Header
	body    []byte
	cookies []*http.Cookie
}

// NewRequest starts a request with the given method and target URI.
func NewRequest(method, target string) *Request {
	return &Request{method: method, target: target, header: make(http.Header)}
}

// Get starts a GET request.
func Get(target string) *Request { return NewRequest(http.MethodGet, target) }

// Head starts a HEAD request.
func Head(target string) *Request { return NewRequest(http.MethodHead, target) }

// Post starts a POST request.
func Post(target string) *Request { return NewRequest(http.MethodPost, target) }

// Put starts a PUT request.
func Put(target string) *Request { return NewRequest(http.MethodPut, target) }

// Patch starts a PATCH request.
func Patch(target string) *Request { return NewRequest(http.MethodPatch, target) }

// Delete starts a DELETE request.
func Delete(target string) *Request { return NewRequest(http.MethodDelete, target) }

// Header adds a request header.
func (r *Request) Header(key, value string) *Request {
	r.header.Add(key, value)
	return r
}

// Body sets the body and its content type.
func (r *Request) Body(body []byte, contentType string) *Request {
	r.body = body
	if contentType != "" {
		r.header.Set("Content-Type", contentType)
	}
	return r
}

// Text sets a text/plain body.
func (r *Request) Text(s string) *Request {
	return r.Body([]byte(s), "text/plain; charset=utf-8")
}

// JSON sets v encoded as JSON as the body. It panics if v cannot be
// encoded.
func (r *Request) JSON(v any) *Request {
	body, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("endpointtest: encoding JSON body: %v", err))
	}
	return r.Body(body, "application/json")
}

// Form sets values as an application/x-www-form-urlencoded body.
func (r *Request) Form(values url.Values) *Request {
	return r.Body([]byte(values.Encode()), "application/x-www-form-urlencoded")
}

// Cookie adds a request cookie.
func (r *Request) Cookie(c *http.Cookie) *Request {
	r.cookies = append(r.cookies, c)
	return r
}

// Bearer sets an "Authorization: Bearer" header.
func (r *Request) Bearer(token string) *Request {
	r.header.Set("Authorization", "Bearer "+token)
	return r
}

// Request builds the *http.Request with the default headers of
// [DefaultHeaders] added where missing.
func (r *Request) Request() *http.Request {
	return r.build(DefaultHeaders())
}

func (r *Request) build(defaults http.Header) *http.Request {
	req := httptest.NewRequest(r.method, r.target, bytes.NewReader(r.body))
	if strings.HasPrefix(r.target, "/") {
		req.Host = DefaultHost
	}

	for k, values := range r.header {
		req.Header[k] = append([]string(nil), values...)
	}
	for k, values := range defaults {
		if _, ok := req.Header[k]; !ok {
			req.Header[k] = append([]string(nil), values...)
		}
	}
	if len(r.body) > 0 && req.Header.Get("Content-Length") == "" {
		req.Header.Set("Content-Length", strconv.Itoa(len(r.body)))
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}
	return req
}
