package holidayapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

func TestHolidaysFetchAndParse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feriados/v1/2025", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2025-01-01","name":"Confraternização mundial","type":"national"},
			{"date":"2025-03-04","name":"Carnaval","type":"national"},
			{"date":"not-a-date","name":"Broken entry","type":"national"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	holidays, err := client.Holidays(context.Background(), 2025)
	require.NoError(t, err)

	// The malformed entry is dropped, not the year.
	require.Len(t, holidays, 2)
	assert.Equal(t, calendar.NewDate(2025, time.January, 1), holidays[0].Date)
	assert.Equal(t, "Carnaval", holidays[1].Name)
}

func TestHolidaysCachedPerYear(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := client.Holidays(ctx, 2025)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err := client.Holidays(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestHolidaysUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Holidays(context.Background(), 2025)
	assert.ErrorIs(t, err, holiday.ErrSourceUnavailable)

	// Unreachable host.
	client = NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err = client.Holidays(context.Background(), 2025)
	assert.ErrorIs(t, err, holiday.ErrSourceUnavailable)
}

func TestRefreshReplacesCache(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if n == 1 {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"date":"2025-03-04","name":"Carnaval"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	ctx := context.Background()

	holidays, err := client.Holidays(ctx, 2025)
	require.NoError(t, err)
	assert.Empty(t, holidays)

	require.NoError(t, client.Refresh(ctx, 2025))

	holidays, err = client.Holidays(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "Carnaval", holidays[0].Name)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
