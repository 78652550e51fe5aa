package output

import "net/http"

// Redirect is a 3xx response without a body.
type Redirect struct {
	status   int
	location string
}

// MovedPermanently redirects to location with 301.
func MovedPermanently(location string) Redirect {
	return Redirect{status: http.StatusMovedPermanently, location: location}
}

// Found redirects to location with 302.
func Found(location string) Redirect {
	return Redirect{status: http.StatusFound, location: location}
}

// SeeOther redirects to location with 303.
func SeeOther(location string) Redirect {
	return Redirect{status: http.StatusSeeOther, location: location}
}

// TemporaryRedirect redirects to location with 307.
func TemporaryRedirect(location string) Redirect {
	return Redirect{status: http.StatusTemporaryRedirect, location: location}
}

// PermanentRedirect redirects to location with 308.
func PermanentRedirect(location string) Redirect {
	return Redirect{status: http.StatusPermanentRedirect, location: location}
}

// NotModified responds with 304.
func NotModified() Redirect {
	return Redirect{status: http.StatusNotModified}
}

// StatusCode returns the redirect status.
func (rd Redirect) StatusCode() int { return rd.status }

// Location returns the redirect target, empty for NotModified.
func (rd Redirect) Location() string { return rd.location }

func (rd Redirect) Respond(w http.ResponseWriter, _ *http.Request) error {
	if rd.location != "" {
		w.Header().Set("Location", rd.location)
	}
	w.WriteHeader(rd.status)
	return nil
}
