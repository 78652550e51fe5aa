package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/endpoints"
	"github.com/MKhiriev/go-finchers/output"
	"github.com/MKhiriev/go-finchers/service"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(service.Recoverer, service.TraceID(h.logger.Logger), service.Logging)
	if h.server.Gzip {
		router.Use(service.Gzip)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = output.Error(w, r, endpoint.NotMatched())
	})

	service.Mount(router, "/api", h.API())
	if h.server.StaticDir != "" {
		service.Mount(router, "/static", h.Static())
	}

	return router
}

// API serves the notes API. Paths are relative to its mount point.
func (h *Handler) API() *service.App {
	return service.New(h.api(),
		service.WithLogger(h.logger.Logger),
		service.WithTimeout(h.server.RequestTimeout),
		service.WithMaxBodySize(h.server.MaxBodySize),
	)
}

// Static serves files from the configured static directory.
func (h *Handler) Static() *service.App {
	return service.New(endpoint.Get(endpoints.Dir(h.server.StaticDir)),
		service.WithLogger(h.logger.Logger),
	)
}

func (h *Handler) api() endpoint.Endpoint[output.Output] {
	return endpoint.MapErr(endpoint.Any(
		h.version(),
		h.token(),
		h.session(),
		h.liveNotes(),
		h.listNotes(),
		h.getNote(),
		h.createNote(),
		h.updateNote(),
		h.deleteNote(),
	), mapError)
}
