package appdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const validFields = `[
	{"id": "engineering", "name": "Engineering", "levels": ["Bachelor's"]},
	{"id": "commerce", "name": "Commerce"}
]`

const validForms = `{
	"engineering": [
		{"id": "core", "title": "Core", "fields": [
			{"name": "Mathematics", "label": "Maths", "type": "select", "options": ["Beginner", "Advanced"]}
		]}
	]
}`

func validFS() fstest.MapFS {
	return fstest.MapFS{
		EducationFieldsResource: {Data: []byte(validFields)},
		FormStructureResource:   {Data: []byte(validForms)},
	}
}

// countingSource records fetches and delegates to an inner Source.
type countingSource struct {
	mu    sync.Mutex
	inner Source
	names []string
}

func (c *countingSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	c.mu.Lock()
	c.names = append(c.names, name)
	c.mu.Unlock()
	return c.inner.Fetch(ctx, name)
}

func TestLoader_Success(t *testing.T) {
	src := &countingSource{inner: DirSource{FS: validFS()}}
	l := NewLoader(src, zaptest.NewLogger(t))

	b, err := l.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Len(t, b.EducationFields, 2)
	assert.Len(t, b.FormStructure["engineering"], 1)
	assert.NotEmpty(t, b.Quiz[GeneralQuizKey], "embedded quiz should be merged in")
	assert.ElementsMatch(t, []string{EducationFieldsResource, FormStructureResource}, src.names)
}

func TestLoader_PublishesOnce(t *testing.T) {
	src := &countingSource{inner: DirSource{FS: validFS()}}
	l := NewLoader(src, nil)

	first, err := l.Load(context.Background())
	require.NoError(t, err)
	second, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, l.Fetches())
	assert.Len(t, src.names, 2)
}

func TestLoader_FetchesConcurrently(t *testing.T) {
	var arrived sync.WaitGroup
	arrived.Add(2)
	release := make(chan struct{})
	go func() {
		arrived.Wait()
		close(release)
	}()

	src := sourceFunc(func(ctx context.Context, name string) ([]byte, error) {
		arrived.Done()
		select {
		case <-release:
		case <-time.After(2 * time.Second):
			return nil, errors.New("fetches were not issued concurrently")
		}
		return DirSource{FS: validFS()}.Fetch(ctx, name)
	})

	_, err := NewLoader(src, nil).Load(context.Background())
	require.NoError(t, err)
}

func TestLoader_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.FS(validFS())))
	t.Cleanup(srv.Close)

	b, err := NewLoader(NewHTTPSource(srv.URL), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "engineering", b.EducationFields[0].ID)
}

func TestLoader_StatusFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/"+FormStructureResource {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		w.Write([]byte(validFields))
	}))
	t.Cleanup(srv.Close)

	l := NewLoader(NewHTTPSource(srv.URL), nil)
	b, err := l.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, b)

	var de *DataError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, DataErrorMessage, err.Error())

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)

	// No retry on a second call.
	_, err2 := l.Load(context.Background())
	assert.Same(t, err, err2)
	assert.Equal(t, 1, l.Fetches())
}

func TestLoader_Failures(t *testing.T) {
	tests := []struct {
		name     string
		fsys     fstest.MapFS
		resource string
	}{
		{
			name:     "missing taxonomy",
			fsys:     fstest.MapFS{FormStructureResource: {Data: []byte(validForms)}},
			resource: EducationFieldsResource,
		},
		{
			name: "malformed form structure",
			fsys: fstest.MapFS{
				EducationFieldsResource: {Data: []byte(validFields)},
				FormStructureResource:   {Data: []byte(`{"engineering": [`)},
			},
			resource: FormStructureResource,
		},
		{
			name: "taxonomy violates schema",
			fsys: fstest.MapFS{
				EducationFieldsResource: {Data: []byte(`[{"name": "no id"}]`)},
				FormStructureResource:   {Data: []byte(validForms)},
			},
			resource: EducationFieldsResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewLoader(DirSource{FS: tt.fsys}, nil).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, b)

			var de *DataError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.resource, de.Resource)
			assert.Contains(t, de.Detail(), tt.resource)
		})
	}
}

func TestLoader_ShippedData(t *testing.T) {
	b, err := NewLoader(DirSource{FS: os.DirFS("../../data")}, nil).Load(context.Background())
	require.NoError(t, err)
	for _, f := range b.EducationFields {
		assert.NotEmpty(t, b.FormStructure[f.ID], "field %s has no form structure", f.ID)
		assert.NotEmpty(t, b.Quiz[f.ID], "field %s has no quiz questions", f.ID)
	}
}

func TestEmbeddedQuiz(t *testing.T) {
	quiz, err := EmbeddedQuiz()
	require.NoError(t, err)
	for field, qs := range quiz {
		for _, q := range qs {
			assert.GreaterOrEqual(t, len(q.Options), 2, "%s/%s", field, q.ID)
		}
	}
}

func TestBundleQuestionsFor(t *testing.T) {
	b := &Bundle{Quiz: QuizSet{
		GeneralQuizKey: {{ID: "g1"}},
		"engineering":  {{ID: "e1"}, {ID: "g1"}},
		"commerce":     {{ID: "c1"}},
	}}

	got := b.QuestionsFor("engineering", "commerce", "engineering")
	var ids []string
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"g1", "e1", "c1"}, ids)
}

type sourceFunc func(ctx context.Context, name string) ([]byte, error)

func (f sourceFunc) Fetch(ctx context.Context, name string) ([]byte, error) { return f(ctx, name) }
