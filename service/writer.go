package service

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter records what has been written to the wrapped writer.
type responseWriter struct {
	http.ResponseWriter

	// status is the code passed to the first WriteHeader, or 200 when the
	// body was written without one.
	status      int
	wroteHeader bool
	size        int
	hijacked    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Written reports whether the response can no longer be changed.
func (w *responseWriter) Written() bool {
	return w.wroteHeader || w.hijacked
}

// Status returns the status sent, or 0 when nothing was sent.
func (w *responseWriter) Status() int {
	if w.hijacked && !w.wroteHeader {
		return http.StatusSwitchingProtocols
	}
	return w.status
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *responseWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(w.ResponseWriter).Hijack()
	if err == nil {
		w.hijacked = true
	}
	return conn, rw, err
}
