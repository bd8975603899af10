package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func emptyCache() *CacheMock {
	c := new(CacheMock)
	c.On("Get", cacheKey, mock.Anything).Return(false, nil)
	c.On("Set", cacheKey, mock.Anything, mock.Anything).Return(nil)
	return c
}

const jobsJSON = `[
	{"id":"a","title":"Night Shift Dreamweaver","company":"Lunar Corp","location":"Remote","category":"design","salaryMin":30000,"salaryMax":50000,"postedDate":"2024-01-01","description":"dream big"},
	{"id":"b","title":"Senior Apology Writer","company":"Regret Inc","location":"Moscow","category":"writing","salaryMin":40000,"salaryMax":90000,"postedDate":"2024-06-01","description":"say sorry"},
	{"id":"c","title":"Junior Apology Writer","company":"Regret Inc","location":"Berlin","category":"writing","salaryMin":20000,"salaryMax":40000,"postedDate":"2024-03-15","description":"say sorry quietly"}
]`

func loadedCatalog(t *testing.T) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobsJSON))
	}))
	t.Cleanup(srv.Close)

	s := New(srv.URL, srv.Client(), emptyCache(), newNoopLogger())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestService_LoadFromHTTP(t *testing.T) {
	s := loadedCatalog(t)

	assert.True(t, s.Ready())
	assert.Equal(t, StateReady, s.State())
	assert.Len(t, s.Jobs(), 3)
	assert.Len(t, s.Filtered(), 3)
}

func TestService_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(jobsJSON), 0o600))

	s := New(path, nil, emptyCache(), newNoopLogger())
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Jobs(), 3)
}

func TestService_LoadFromCacheSkipsFetch(t *testing.T) {
	cache := new(CacheMock)
	cache.On("Get", cacheKey, mock.Anything).Run(func(args mock.Arguments) {
		jobs := args.Get(1).(*[]models.Job)
		*jobs = []models.Job{{ID: "cached", Title: "Cached Job"}}
	}).Return(true, nil).Once()

	// источник намеренно недоступен: загрузка обязана пройти из кеша
	s := New("http://127.0.0.1:1/jobs.json", nil, cache, newNoopLogger())
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Jobs(), 1)
	assert.Equal(t, "cached", s.Jobs()[0].ID)
	cache.AssertExpectations(t)
}

func TestService_LoadFailureLeavesCatalogEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := New(srv.URL, srv.Client(), emptyCache(), newNoopLogger())
	err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateFailed, s.State())
	assert.False(t, s.Ready())
	assert.Empty(t, s.Jobs())
}

func TestService_LoadParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not a json array"))
	}))
	defer srv.Close()

	s := New(srv.URL, srv.Client(), emptyCache(), newNoopLogger())
	assert.Error(t, s.Load(context.Background()))
	assert.Equal(t, StateFailed, s.State())
}

func TestService_Search(t *testing.T) {
	s := loadedCatalog(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "по названию", query: "apology", wantIDs: []string{"b", "c"}},
		{name: "по компании без учёта регистра", query: "REGRET", wantIDs: []string{"b", "c"}},
		{name: "по локации", query: "moscow", wantIDs: []string{"b"}},
		{name: "по категории", query: "design", wantIDs: []string{"a"}},
		{name: "без совпадений", query: "astronaut", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(tt.query)
			var ids []string
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_EmptySearchResetsFilter(t *testing.T) {
	s := loadedCatalog(t)

	require.Len(t, s.Search("moscow"), 1)
	assert.Len(t, s.Search(""), 3)

	require.Len(t, s.Search("design"), 1)
	assert.Len(t, s.Search("   "), 3)
}

func TestService_SearchDoesNotComposeWithFilter(t *testing.T) {
	s := loadedCatalog(t)

	// каждый вызов пересчитывает срез от полного списка: побеждает последний предикат
	s.FilterByCategory("design")
	got := s.Search("apology")
	assert.Len(t, got, 2)
}

func TestService_FilterByCategory(t *testing.T) {
	s := loadedCatalog(t)

	assert.Len(t, s.FilterByCategory("writing"), 2)
	assert.Empty(t, s.FilterByCategory("mining"))
	assert.Len(t, s.FilterByCategory(models.CategoryAll), 3)
}

func TestService_Sort(t *testing.T) {
	s := loadedCatalog(t)

	tests := []struct {
		name      string
		key       string
		wantOrder []string
	}{
		{name: "новые первыми", key: models.SortNewest, wantOrder: []string{"b", "c", "a"}},
		{name: "зарплата по убыванию", key: models.SortSalaryHigh, wantOrder: []string{"b", "a", "c"}},
		{name: "зарплата по возрастанию", key: models.SortSalaryLow, wantOrder: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Search("") // вернуть полный срез
			got := s.Sort(tt.key)
			var ids []string
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.wantOrder, ids)
		})
	}
}

func TestService_SortUnknownKeyIsNoop(t *testing.T) {
	s := loadedCatalog(t)

	before := s.Filtered()
	after := s.Sort("by-vibes")
	assert.Equal(t, before, after)
}

func TestService_GetByID(t *testing.T) {
	s := loadedCatalog(t)

	job := s.GetByID("b")
	require.NotNil(t, job)
	assert.Equal(t, "Senior Apology Writer", job.Title)

	assert.Nil(t, s.GetByID("ghost"))
}
