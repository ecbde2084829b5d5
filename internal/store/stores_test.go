package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poultry360/internal/api"
	"poultry360/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return api.New(api.Config{BaseURL: ts.URL})
}

func TestFlockStore_CachedLookupHit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flocks", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":[
			{"id":1,"batch_number":"LAY-001","initial_count":500,"current_count":480},
			{"id":2,"batch_number":"BRO-002","initial_count":300,"current_count":295}
		],"pagination":{"page":1,"limit":100,"hasMore":false}}`))
	})

	s := NewFlockStore(client)
	s.Lookup(context.Background(), 2)

	require.NotNil(t, s.Current())
	assert.Equal(t, "BRO-002", s.Current().BatchNumber)
	assert.Empty(t, s.ErrorMessage())
	assert.False(t, s.Loading())
}

func TestFlockStore_CachedLookupMissIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"batch_number":"LAY-001"}],"pagination":{"page":1,"limit":100,"hasMore":false}}`))
	})

	s := NewFlockStore(client)
	s.Lookup(context.Background(), 999)

	assert.Nil(t, s.Current())
	assert.Empty(t, s.ErrorMessage())
}

func TestFlockStore_RemoteLookupStrategy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flocks/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"batch_number":"KUR-007","initial_count":200,"current_count":190}`))
	})

	s := NewFlockStore(client)
	s.SetLookupStrategy(LookupRemote)
	s.Lookup(context.Background(), 7)

	require.NotNil(t, s.Current())
	assert.Equal(t, "KUR-007", s.Current().BatchNumber)
}

func TestFarmStore_RemoteLookupByDefault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/farms/3", r.URL.Path)
		w.Write([]byte(`{"id":3,"name":"North","location":"Gulu","capacity":2000,"farm_type":"layer"}`))
	})

	s := NewFarmStore(client)
	s.Lookup(context.Background(), 3)

	require.NotNil(t, s.Current())
	assert.Equal(t, "North", s.Current().Name)
}

func TestFarmStore_LookupFailureRecorded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"farm not found"}`))
	})

	s := NewFarmStore(client)
	s.Lookup(context.Background(), 42)

	assert.Nil(t, s.Current())
	assert.Equal(t, "farm not found", s.ErrorMessage())
	assert.False(t, s.Loading())
}

func TestFarmStore_CreateErrorRecordedAndReturned(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"capacity must be positive"}`))
	})

	s := NewFarmStore(client)
	err := s.Create(context.Background(), domain.FarmParams{Name: "Main", Capacity: -5})

	require.Error(t, err)
	assert.Equal(t, "capacity must be positive", s.ErrorMessage())
}

func TestDashboardStore_RefreshFansOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/overview":
			w.Write([]byte(`{"farms":2,"flocks":5,"totalBirds":1200,"todayEggs":800}`))
		case "/activities/recent":
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"data":[{"type":"production","date":"2025-06-01","description":"800 eggs collected"}]}`))
		case "/analytics/production-performance":
			assert.Equal(t, "30days", r.URL.Query().Get("period"))
			w.Write([]byte(`{"data":[{"batch_number":"LAY-001","total_eggs_30days":5000}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	s := NewDashboardStore(client)
	s.Refresh(context.Background())

	require.NotNil(t, s.Overview())
	assert.Equal(t, 1200, s.Overview().TotalBirds)
	require.Len(t, s.Activities(), 1)
	require.Len(t, s.Performance(), 1)
	assert.Empty(t, s.ErrorMessage())
	assert.False(t, s.Loading())
}

func TestDashboardStore_PartialFailureKeepsSuccesses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/overview":
			w.Write([]byte(`{"farms":2,"flocks":5,"totalBirds":1200}`))
		case "/analytics/production-performance":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"analytics unavailable"}`))
		default:
			w.Write([]byte(`{"data":[]}`))
		}
	})

	s := NewDashboardStore(client)
	s.Refresh(context.Background())

	require.NotNil(t, s.Overview(), "loaded sections survive a sibling failure")
	assert.NotEmpty(t, s.ErrorMessage())
	assert.False(t, s.Loading())
}
