package endpoint

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// run applies e to a request and executes the resulting action.
func run[T any](t *testing.T, e Endpoint[T], r *http.Request) (T, error) {
	t.Helper()

	a, err := e.Apply(NewContext(NewInput(r)))
	if err != nil {
		var zero T
		return zero, err
	}
	return a(context.Background())
}

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestValueUnitLazy(t *testing.T) {
	v, err := run(t, Value(7), get("/"))
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	u, err := run(t, Unit(), get("/anything"))
	require.NoError(t, err)
	assert.Equal(t, struct{}{}, u)

	calls := 0
	lazy := Lazy(func(context.Context) (string, error) {
		calls++
		return "done", nil
	})
	a, err := lazy.Apply(NewContext(NewInput(get("/"))))
	require.NoError(t, err)
	assert.Zero(t, calls)

	s, err := a(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", s)
	assert.Equal(t, 1, calls)
}

func TestReject(t *testing.T) {
	_, err := run(t, Reject[int](httperr.Forbidden(errBoom)), get("/"))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, http.StatusForbidden, httperr.Status(err))
}

func TestMapAndThen(t *testing.T) {
	double := Map(Param[int](), func(n int) int { return n * 2 })
	v, err := run(t, double, get("/21"))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	parse := AndThen(Param[string](), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	n, err := run(t, parse, get("/12"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = run(t, parse, get("/twelve"))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name   string
		e      Endpoint[string]
		target string
		want   string
	}{
		{
			name:   "match failure is recovered",
			e:      With(Segment("a"), Value("a")),
			target: "/b",
			want:   "recovered: no route matched",
		},
		{
			name:   "action failure is recovered",
			e:      AndThen(Unit(), func(context.Context, struct{}) (string, error) { return "", errBoom }),
			target: "/",
			want:   "recovered: boom",
		},
		{
			name:   "success passes through",
			e:      With(Segment("a"), Value("ok")),
			target: "/a",
			want:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Recover(tt.e, func(_ context.Context, err error) (string, error) {
				return "recovered: " + err.Error(), nil
			})
			v, err := run(t, e, get(tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestRecoverRestoresCursorOnFailure(t *testing.T) {
	inner := Recover(With(Path("/a/b"), Value(1)), func(context.Context, error) (int, error) {
		return 0, nil
	})
	e := And(inner, Param[string]())

	v, err := run(t, e, get("/a/x"))
	require.NoError(t, err)
	assert.Equal(t, 0, v.First)
	assert.Equal(t, "a", v.Second)
}

func TestMapErr(t *testing.T) {
	e := MapErr(Segment("a"), func(err error) error {
		return httperr.New(http.StatusTeapot, err)
	})

	_, err := run(t, e, get("/b"))
	assert.Equal(t, http.StatusTeapot, httperr.Status(err))
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestOptional(t *testing.T) {
	e := And(Optional(Path("/a")), Remains[string]())

	v, err := run(t, e, get("/a/rest"))
	require.NoError(t, err)
	assert.NotNil(t, v.First)
	assert.Equal(t, "rest", v.Second)

	v, err = run(t, e, get("/b/rest"))
	require.NoError(t, err)
	assert.Nil(t, v.First)
	assert.Equal(t, "b/rest", v.Second)

	_, err = run(t, Optional(Param[int]()), get("/nan"))
	assert.Equal(t, http.StatusBadRequest, httperr.Status(err))
}

func TestWrap(t *testing.T) {
	var stringify Wrapper[int, string] = func(e Endpoint[int]) Endpoint[string] {
		return Map(e, strconv.Itoa)
	}

	v, err := run(t, Wrap(Value(5), stringify), get("/"))
	require.NoError(t, err)
	assert.Equal(t, "5", v)
}
