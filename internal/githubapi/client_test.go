// Unit tests for the GitHub LabelService adapter, against a local HTTP
// server standing in for the REST API.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// newTestClient starts a fake API server handled by mux and returns a
// Client pointed at it.
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gh := github.NewClient(server.Client())
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base
	return NewFromClient(gh)
}

func TestListLabels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octocat/hello-world/issues/7/labels", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name":"bug","color":"d73a4a"},{"name":"state::step::1"}]`)
	})
	c := newTestClient(t, mux)

	labels, err := c.ListLabels(context.Background(), "octocat", "hello-world", 7)
	require.NoError(t, err)
	assert.Equal(t, []types.Label{
		{Name: "bug", Color: "d73a4a"},
		{Name: "state::step::1"},
	}, labels)
}

func TestListLabelsFollowsPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octocat/hello-world/issues/7/labels", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"name":"second-page"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<http://%s/repos/octocat/hello-world/issues/7/labels?page=2>; rel="next"`, r.Host))
		fmt.Fprint(w, `[{"name":"first-page"}]`)
	})
	c := newTestClient(t, mux)

	labels, err := c.ListLabels(context.Background(), "octocat", "hello-world", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"first-page", "second-page"}, types.Names(labels))
}

func TestReplaceLabels(t *testing.T) {
	var sent []string
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /repos/octocat/hello-world/issues/7/labels", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &sent))

		out := make([]map[string]string, len(sent))
		for i, n := range sent {
			out[i] = map[string]string{"name": n}
		}
		assert.NoError(t, json.NewEncoder(w).Encode(out))
	})
	c := newTestClient(t, mux)

	labels, err := c.ReplaceLabels(context.Background(), "octocat", "hello-world", 7,
		[]string{"bug", "state::step::2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bug", "state::step::2"}, sent)
	assert.Equal(t, []string{"bug", "state::step::2"}, types.Names(labels))
}

func TestReplaceLabelsEmptyList(t *testing.T) {
	var body string
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /repos/octocat/hello-world/issues/7/labels", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		fmt.Fprint(w, `[]`)
	})
	c := newTestClient(t, mux)

	_, err := c.ReplaceLabels(context.Background(), "octocat", "hello-world", 7, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, body, "a nil list must still clear the labels explicitly")
}

func TestDeleteLabel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /repos/octocat/hello-world/labels/state::step::1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		c := newTestClient(t, mux)

		err := c.DeleteLabel(context.Background(), "octocat", "hello-world", "state::step::1")
		assert.NoError(t, err)
	})

	t.Run("missing label maps to ErrLabelNotFound", func(t *testing.T) {
		c := newTestClient(t, http.NewServeMux())

		err := c.DeleteLabel(context.Background(), "octocat", "hello-world", "gone")
		assert.ErrorIs(t, err, types.ErrLabelNotFound)
	})
}

func TestListEntitiesByLabel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octocat/hello-world/issues", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "state::step::1", q.Get("labels"))
		assert.Equal(t, "all", q.Get("state"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "100", q.Get("per_page"))
		fmt.Fprint(w, `[{"number":7},{"number":12}]`)
	})
	c := newTestClient(t, mux)

	entities, err := c.ListEntitiesByLabel(context.Background(), "octocat", "hello-world", "state::step::1", 1, 100)
	require.NoError(t, err)
	assert.Equal(t, []types.Entity{{Number: 7}, {Number: 12}}, entities)
}
