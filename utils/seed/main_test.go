package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
businesses:
  - owner_id: 3
    name: Blue Star
    street_address: 1237 SE Grand Ave
    city: Portland
    state: OR
    zip_code: 97214
    reviews:
      - user_id: 10
        stars: 5
        review_text: best donuts
      - user_id: 11
        stars: 4
  - owner_id: 4
    name: Voodoo
    street_address: 22 SW 3rd Ave
    city: Portland
    state: OR
    zip_code: 97204
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadSeedDocument(t *testing.T) {
	bs, err := loadSeed(writeFile(t, seedYAML))
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, "Blue Star", bs[0].Name)
	assert.Equal(t, 97214, bs[0].ZipCode)
	require.Len(t, bs[0].Reviews, 2)
	require.NotNil(t, bs[0].Reviews[0].ReviewText)
	assert.Equal(t, "best donuts", *bs[0].Reviews[0].ReviewText)
	assert.Nil(t, bs[0].Reviews[1].ReviewText)
}

func TestLoadSeedList(t *testing.T) {
	bs, err := loadSeed(writeFile(t, "- name: Solo\n  state: WA\n"))
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "Solo", bs[0].Name)
}

func TestSeedPostsBusinessesThenReviews(t *testing.T) {
	var paths []string
	var reviewBodies []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if r.URL.Path == "/reviews" {
			reviewBodies = append(reviewBodies, body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7}`))
	}))
	defer srv.Close()

	bs, err := loadSeed(writeFile(t, seedYAML))
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	failed := seed(srv.Client(), srv.URL, bs, &out, &errOut)
	assert.False(t, failed)
	assert.Equal(t, []string{"/businesses", "/reviews", "/reviews", "/businesses"}, paths)
	require.Len(t, reviewBodies, 2)
	assert.EqualValues(t, 7, reviewBodies[0]["business_id"])
	assert.NotContains(t, reviewBodies[1], "review_text")
	assert.Empty(t, errOut.String())
}

func TestSeedReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Error": "bad"}`))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	failed := seed(srv.Client(), srv.URL, []Business{{Name: "X", State: "WA"}}, &out, &errOut)
	assert.True(t, failed)
	assert.Contains(t, errOut.String(), "status=400")
}
