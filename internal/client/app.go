package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finchers/internal/adapter"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/models"
)

const demoTag = "demo"

// App runs one client command against the notes server.
type App struct {
	adapter     adapter.ServerAdapter
	credentials models.Credentials
	out         io.Writer
	logger      *logger.Logger
}

// NewApp returns an App that authenticates with credentials and prints
// results to out.
func NewApp(serverAdapter adapter.ServerAdapter, credentials models.Credentials, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	return &App{
		adapter:     serverAdapter,
		credentials: credentials,
		out:         out,
		logger:      logger,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	command := "demo"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}
	a.logger.Debug().Str("command", command).Strs("args", args).Msg("running client command")

	switch command {
	case "version":
		return a.version(ctx)
	case "list":
		return a.authorized(ctx, func() error { return a.list(ctx, args) })
	case "create":
		return a.authorized(ctx, func() error { return a.create(ctx, args) })
	case "get":
		return a.authorized(ctx, func() error { return a.get(ctx, args) })
	case "delete":
		return a.authorized(ctx, func() error { return a.delete(ctx, args) })
	case "watch":
		return a.watch(ctx)
	case "demo":
		return a.demo(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// authorized logs in unless the adapter already holds a token, then runs fn.
func (a *App) authorized(ctx context.Context, fn func() error) error {
	if a.adapter.Token() == "" {
		token, err := a.adapter.Login(ctx, a.credentials)
		if err != nil {
			return fmt.Errorf("login as %q: %w", a.credentials.Subject, err)
		}
		a.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("logged in")
	}
	return fn()
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	fmt.Fprintf(a.out, "Server version: %s\nServer build date: %s\nServer commit: %s\n", v.Version, v.Date, v.Commit)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: list [tag]", ErrUsage)
	}

	var filter models.NoteFilter
	if len(args) == 1 {
		filter.Tag = args[0]
	}

	notes, err := a.adapter.ListNotes(ctx, filter)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if len(notes) == 0 {
		fmt.Fprintln(a.out, "no notes")
		return nil
	}
	for _, note := range notes {
		a.printNote(note)
	}
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 3 {
		return fmt.Errorf("%w: create <title> [body] [tag]", ErrUsage)
	}

	req := models.NoteRequest{Title: args[0]}
	if len(args) > 1 {
		req.Body = args[1]
	}
	if len(args) > 2 {
		req.Tag = args[2]
	}

	note, err := a.adapter.CreateNote(ctx, req)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	fmt.Fprintf(a.out, "created %s (version %d)\n", note.ID, note.Version)
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := noteID(args, "get <id>")
	if err != nil {
		return err
	}

	note, err := a.adapter.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("get note %s: %w", id, err)
	}

	a.printNote(note)
	if note.Body != "" {
		fmt.Fprintf(a.out, "\n%s\n", note.Body)
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := noteID(args, "delete <id>")
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	fmt.Fprintf(a.out, "deleted %s\n", id)
	return nil
}

func (a *App) watch(ctx context.Context) error {
	fmt.Fprintln(a.out, "watching note events, interrupt to stop")

	err := a.adapter.Watch(ctx, func(event models.NoteEvent) {
		fmt.Fprintf(a.out, "%-8s %s %q by %s\n", event.Type, event.Note.ID, event.Note.Title, event.Note.Author)
	})
	if err != nil {
		return fmt.Errorf("watch notes: %w", err)
	}
	return nil
}

func (a *App) demo(ctx context.Context) error {
	if err := a.version(ctx); err != nil {
		return err
	}

	return a.authorized(ctx, func() error {
		title := "hello from " + a.credentials.Subject
		body := "written at " + time.Now().UTC().Format(time.RFC3339)
		if err := a.create(ctx, []string{title, body, demoTag}); err != nil {
			return err
		}
		return a.list(ctx, []string{demoTag})
	})
}

func (a *App) printNote(note models.Note) {
	tag := note.Tag
	if tag == "" {
		tag = "-"
	}
	fmt.Fprintf(a.out, "%s  v%-3d %-10s %s\n", note.ID, note.Version, tag, note.Title)
}

func noteID(args []string, usage string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrUsage, usage)
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: note id %q: %w", ErrUsage, args[0], err)
	}
	return id, nil
}
