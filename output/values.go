package output

import (
	"io"
	"net/http"
)

type readerOutput struct {
	r           io.Reader
	contentType string
}

// Reader streams r as the body. r is closed afterwards if it is an
// io.Closer.
func Reader(r io.Reader, contentType string) Output {
	return readerOutput{r: r, contentType: contentType}
}

func (o readerOutput) Respond(w http.ResponseWriter, _ *http.Request) error {
	if c, ok := o.r.(io.Closer); ok {
		defer c.Close()
	}
	if o.contentType != "" && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", o.contentType)
	}
	w.WriteHeader(http.StatusOK)
	_, err := io.Copy(w, o.r)
	return err
}

// statusWriter replaces the status written by the wrapped output.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.WriteHeader(w.status)
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type statusOutput struct {
	status int
	value  any
}

// Status responds with v (as [Respond] would) but with the given status
// code. A nil v sends no body.
func Status(status int, v any) Output {
	return statusOutput{status: status, value: v}
}

func (o statusOutput) Respond(w http.ResponseWriter, r *http.Request) error {
	sw := &statusWriter{ResponseWriter: w, status: o.status}
	if o.value == nil {
		sw.WriteHeader(o.status)
		return nil
	}
	if err := Respond(sw, r, o.value); err != nil {
		return err
	}
	sw.WriteHeader(o.status)
	return nil
}

// Created responds with v and 201.
func Created(v any) Output { return Status(http.StatusCreated, v) }

// Accepted responds with v and 202.
func Accepted(v any) Output { return Status(http.StatusAccepted, v) }

// NoContent responds with 204 and no body.
func NoContent() Output { return Status(http.StatusNoContent, nil) }

type headerOutput struct {
	value  any
	header http.Header
}

// WithHeader responds with v after setting a response header. Calls can be
// nested to set several headers.
func WithHeader(v any, key, value string) Output {
	h := make(http.Header)
	h.Set(key, value)
	return headerOutput{value: v, header: h}
}

func (o headerOutput) Respond(w http.ResponseWriter, r *http.Request) error {
	for k, values := range o.header {
		w.Header()[k] = values
	}
	return Respond(w, r, o.value)
}
