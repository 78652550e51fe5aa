package http

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/endpoints"
	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/models"
	"github.com/MKhiriev/go-finchers/output"
)

// noteID matches /notes/{id} and nothing below it. /notes/live belongs to
// the live feed and does not match.
func noteID() endpoint.Endpoint[uuid.UUID] {
	return endpoint.Left(
		endpoint.With(endpoint.Path("/notes"), endpoint.With(notSegment(liveSegment), endpoint.Param[uuid.UUID]())),
		endpoint.EOS(),
	)
}

// notSegment does not match when the next segment is s. It consumes nothing.
func notSegment(s string) endpoint.Endpoint[struct{}] {
	return endpoint.Func[struct{}](func(cx *endpoint.Context) (action.Action[struct{}], error) {
		if next, ok := cx.Peek(); ok && next == s {
			return nil, endpoint.NotMatched()
		}
		return action.Ready(struct{}{}), nil
	})
}

// subject yields the subject of a valid bearer token.
func (h *Handler) subject() endpoint.Endpoint[string] {
	return endpoint.Map(endpoints.JWT(h.tokenSignKey, h.tokenIssuer), func(claims *jwt.RegisteredClaims) string {
		return claims.Subject
	})
}

// ifMatch yields the version named by the If-Match header, or 0 when the
// header is missing or "*".
func ifMatch() endpoint.Endpoint[int64] {
	return endpoint.AndThen(endpoints.HeaderOptional[string]("If-Match"), func(_ context.Context, v *string) (int64, error) {
		if v == nil || *v == "*" {
			return 0, nil
		}

		version, err := strconv.ParseInt(strings.Trim(*v, `"`), 10, 64)
		if err != nil || version <= 0 {
			return 0, httperr.BadRequest(fmt.Errorf("%w: %s", ErrInvalidIfMatch, *v))
		}
		return version, nil
	})
}

func etag(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

// withETag responds with note and its version as ETag.
func withETag(note models.Note) output.Output {
	return output.WithHeader(note, "ETag", etag(note.Version))
}

func (h *Handler) listNotes() endpoint.Endpoint[output.Output] {
	return endpoint.Get(endpoint.AndThen(
		endpoint.With(endpoint.Path("/notes/"), endpoints.Query[models.NoteFilter]()),
		func(ctx context.Context, filter models.NoteFilter) (output.Output, error) {
			notes, err := h.services.NoteService.ListNotes(ctx, filter)
			if err != nil {
				return nil, err
			}
			if notes == nil {
				notes = []models.Note{}
			}
			return output.JSON(models.NotesResponse{Notes: notes, Length: len(notes)}), nil
		},
	))
}

func (h *Handler) getNote() endpoint.Endpoint[output.Output] {
	return endpoint.Get(endpoint.AndThen(noteID(), func(ctx context.Context, id uuid.UUID) (output.Output, error) {
		note, err := h.services.NoteService.GetNote(ctx, id)
		if err != nil {
			return nil, err
		}
		return withETag(note), nil
	}))
}

func (h *Handler) createNote() endpoint.Endpoint[output.Output] {
	return endpoint.Post(endpoint.AndThen(
		endpoint.With(endpoint.Path("/notes/"), endpoint.Then(h.subject(), endpoints.JSON[models.NoteRequest]())),
		func(ctx context.Context, in action.Pair[string, models.NoteRequest]) (output.Output, error) {
			note, err := h.services.NoteService.CreateNote(ctx, in.First, in.Second)
			if err != nil {
				return nil, err
			}
			return output.WithHeader(output.Created(note), "ETag", etag(note.Version)), nil
		},
	))
}

type noteUpdate struct {
	id      uuid.UUID
	author  string
	req     models.NoteRequest
	version int64
}

func (h *Handler) updateNote() endpoint.Endpoint[output.Output] {
	update := endpoint.Map(
		endpoint.Then(endpoint.And(noteID(), h.subject()), endpoint.And(endpoints.JSON[models.NoteRequest](), ifMatch())),
		func(p action.Pair[action.Pair[uuid.UUID, string], action.Pair[models.NoteRequest, int64]]) noteUpdate {
			return noteUpdate{id: p.First.First, author: p.First.Second, req: p.Second.First, version: p.Second.Second}
		},
	)

	return endpoint.Put(endpoint.AndThen(update, func(ctx context.Context, u noteUpdate) (output.Output, error) {
		note, err := h.services.NoteService.UpdateNote(ctx, u.author, u.id, u.req, u.version)
		if err != nil {
			return nil, err
		}
		return withETag(note), nil
	}))
}

func (h *Handler) deleteNote() endpoint.Endpoint[output.Output] {
	return endpoint.Delete(endpoint.AndThen(
		endpoint.And(noteID(), h.subject()),
		func(ctx context.Context, in action.Pair[uuid.UUID, string]) (output.Output, error) {
			if err := h.services.NoteService.DeleteNote(ctx, in.Second, in.First); err != nil {
				return nil, err
			}
			return output.NoContent(), nil
		},
	))
}
