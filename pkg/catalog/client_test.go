package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func testClient(serverURL string) *Client {
	return NewClient(Config{ClientID: "test-client-id", BaseURL: serverURL})
}

func searchPayload(id int, title string) map[string]any {
	return map[string]any{
		"data": []map[string]any{
			{"node": map[string]any{"id": id, "title": title}},
		},
	}
}

func TestClient_LookupID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-MAL-CLIENT-ID") != "test-client-id" {
			t.Errorf("missing client ID header")
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		json.NewEncoder(w).Encode(searchPayload(1, "Cowboy Bebop"))
	}))
	defer server.Close()

	id, ok, err := testClient(server.URL).LookupID(context.Background(), "Cowboy Bebop")
	if err != nil {
		t.Fatalf("LookupID failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a result")
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
}

func TestClient_LookupTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchPayload(30, "Neon Genesis Evangelion"))
	}))
	defer server.Close()

	title, ok, err := testClient(server.URL).LookupTitle(context.Background(), "evangelion")
	if err != nil {
		t.Fatalf("LookupTitle failed: %v", err)
	}
	if !ok || title != "Neon Genesis Evangelion" {
		t.Errorf("title = %q, ok = %v", title, ok)
	}
}

func TestClient_LookupID_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer server.Close()

	_, ok, err := testClient(server.URL).LookupID(context.Background(), "nothing matches this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected absent result for empty data array")
	}
}

func TestClient_LookupID_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "definitely not a list"}`))
	}))
	defer server.Close()

	_, ok, err := testClient(server.URL).LookupID(context.Background(), "x")
	if err != nil {
		t.Fatalf("malformed payload should not be an error, got: %v", err)
	}
	if ok {
		t.Error("expected absent result for malformed payload")
	}
}

func TestClient_LookupGenres(t *testing.T) {
	var detailCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/anime":
			json.NewEncoder(w).Encode(searchPayload(5, "Cowboy Bebop"))
		case r.URL.Path == "/anime/5":
			detailCalls.Add(1)
			if got := r.URL.Query().Get("fields"); got != "genres" {
				t.Errorf("fields = %q, want genres", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"genres": []map[string]any{
					{"name": "Action"}, {"name": "Sci-Fi"}, {"name": "Space"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	genres, ok, err := testClient(server.URL).LookupGenres(context.Background(), "Cowboy Bebop")
	if err != nil {
		t.Fatalf("LookupGenres failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a result")
	}
	if genres != "Action, Sci-Fi, Space" {
		t.Errorf("genres = %q, want %q", genres, "Action, Sci-Fi, Space")
	}
	if n := detailCalls.Load(); n != 1 {
		t.Errorf("detail endpoint called %d times, want 1", n)
	}
}

func TestClient_LookupGenres_ShortCircuit(t *testing.T) {
	var detailCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/anime/") {
			detailCalls.Add(1)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer server.Close()

	_, ok, err := testClient(server.URL).LookupGenres(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected absent result")
	}
	if n := detailCalls.Load(); n != 0 {
		t.Errorf("detail endpoint called %d times after failed search, want 0", n)
	}
}

func TestClient_GenresByID(t *testing.T) {
	var searchCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/anime" {
			searchCalls.Add(1)
			return
		}
		if r.URL.Path != "/anime/9" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"genres": []map[string]any{{"name": "Drama"}, {"name": "Romance"}},
		})
	}))
	defer server.Close()

	genres, ok, err := testClient(server.URL).GenresByID(context.Background(), 9)
	if err != nil {
		t.Fatalf("GenresByID failed: %v", err)
	}
	if !ok || genres != "Drama, Romance" {
		t.Errorf("genres = %q, ok = %v", genres, ok)
	}
	if n := searchCalls.Load(); n != 0 {
		t.Errorf("search endpoint called %d times for a known ID, want 0", n)
	}
}

func TestClient_LookupGenres_MissingGenresField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/anime" {
			json.NewEncoder(w).Encode(searchPayload(5, "Cowboy Bebop"))
			return
		}
		w.Write([]byte(`{"id": 5, "title": "Cowboy Bebop"}`))
	}))
	defer server.Close()

	_, ok, err := testClient(server.URL).LookupGenres(context.Background(), "Cowboy Bebop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected absent result when genres field is missing")
	}
}

func TestClient_LookupGenres_EmptyGenreList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/anime" {
			json.NewEncoder(w).Encode(searchPayload(7, "Some Show"))
			return
		}
		w.Write([]byte(`{"id": 7, "genres": []}`))
	}))
	defer server.Close()

	genres, ok, err := testClient(server.URL).LookupGenres(context.Background(), "Some Show")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("an empty genre list is still a valid result")
	}
	if genres != "" {
		t.Errorf("genres = %q, want empty string", genres)
	}
}

func TestClient_NotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := testClient(server.URL)
	ctx := context.Background()

	if _, ok, err := c.LookupID(ctx, "x"); err != nil || ok {
		t.Errorf("LookupID on 404: ok = %v, err = %v; want absent without error", ok, err)
	}
	if _, ok, err := c.LookupTitle(ctx, "x"); err != nil || ok {
		t.Errorf("LookupTitle on 404: ok = %v, err = %v; want absent without error", ok, err)
	}
	if _, ok, err := c.LookupGenres(ctx, "x"); err != nil || ok {
		t.Errorf("LookupGenres on 404: ok = %v, err = %v; want absent without error", ok, err)
	}
}

func TestClient_TransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, _, err := testClient(server.URL).LookupID(context.Background(), "x")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error %v does not wrap ErrNetwork", err)
	}
}
