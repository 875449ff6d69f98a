package businesses

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jeomhps/business-reviews/internal/db/dbtest"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "http://api.test"

func newRouter(s Store) (*gin.Engine, *logtest.Hook) {
	gin.SetMode(gin.TestMode)
	log, hook := logtest.NewNullLogger()
	h := New(s, base, log)
	r := gin.New()
	r.POST("/businesses", h.Create)
	r.GET("/businesses", h.List)
	r.GET("/businesses/:id", h.Get)
	r.PUT("/businesses/:id", h.Update)
	r.DELETE("/businesses/:id", h.Delete)
	r.GET("/owners/:owner_id/businesses", h.ListByOwner)
	return r, hook
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func payload(owner int) map[string]any {
	return map[string]any{
		"owner_id":       owner,
		"name":           "Stumptown",
		"street_address": "128 SW 3rd Ave",
		"city":           "Portland",
		"state":          "OR",
		"zip_code":       97204,
	}
}

func TestCreateThenGet(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())

	w := do(r, http.MethodPost, "/businesses", payload(11))
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decode(t, w, &created)
	assert.EqualValues(t, 1, created["id"])
	assert.Equal(t, base+"/businesses/1", created["self"])

	w = do(r, http.MethodGet, "/businesses/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	decode(t, w, &got)
	assert.Equal(t, created, got)
	for k, v := range payload(11) {
		assert.EqualValues(t, v, got[k], k)
	}
	assert.NotContains(t, got, "business_id")
}

func TestCreateMissingEachField(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	for field := range payload(1) {
		body := payload(1)
		delete(body, field)
		w := do(r, http.MethodPost, "/businesses", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, field)
		assert.JSONEq(t, `{"Error": "`+common.MsgMissingAttributes+`"}`, w.Body.String(), field)
	}
}

func TestCreateMalformedBody(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	req := httptest.NewRequest(http.MethodPost, "/businesses", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStoreFailure(t *testing.T) {
	s := dbtest.NewMem()
	s.Err = errors.New("connection refused")
	r, hook := newRouter(s)

	w := do(r, http.MethodPost, "/businesses", payload(1))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"Error": "Unable to create lodging"}`, w.Body.String())
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "connection refused")
}

func TestGetNotFound(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	for _, path := range []string{"/businesses/42", "/businesses/abc"} {
		w := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"Error": "No business with this business_id exists"}`, w.Body.String())
	}
}

func seed(t *testing.T, r http.Handler, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/businesses", payload(i)).Code)
	}
}

type page struct {
	Entries []map[string]any `json:"entries"`
	Next    *string          `json:"next"`
}

func TestListExactlyOnePage(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	seed(t, r, 3)

	var p page
	decode(t, do(r, http.MethodGet, "/businesses?limit=3", nil), &p)
	assert.Len(t, p.Entries, 3)
	assert.Nil(t, p.Next)
}

func TestListWalksPages(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	seed(t, r, 4)

	var p page
	w := do(r, http.MethodGet, "/businesses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &p)
	require.Len(t, p.Entries, 3)
	assert.EqualValues(t, 1, p.Entries[0]["id"])
	require.NotNil(t, p.Next)
	assert.Equal(t, base+"/businesses?limit=3&offset=3", *p.Next)

	var p2 page
	decode(t, do(r, http.MethodGet, "/businesses?limit=3&offset=3", nil), &p2)
	require.Len(t, p2.Entries, 1)
	assert.EqualValues(t, 4, p2.Entries[0]["id"])
	assert.Nil(t, p2.Next)
}

func TestListEmptyStore(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	w := do(r, http.MethodGet, "/businesses", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries": [], "next": null}`, w.Body.String())
}

func TestListBadQuery(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	w := do(r, http.MethodGet, "/businesses?limit=three", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByOwner(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	do(r, http.MethodPost, "/businesses", payload(5))
	do(r, http.MethodPost, "/businesses", payload(6))
	do(r, http.MethodPost, "/businesses", payload(5))

	var out []map[string]any
	decode(t, do(r, http.MethodGet, "/owners/5/businesses", nil), &out)
	require.Len(t, out, 2)
	assert.EqualValues(t, 1, out[0]["id"])
	assert.EqualValues(t, 3, out[1]["id"])
	assert.Equal(t, base+"/businesses/3", out[1]["self"])

	w := do(r, http.MethodGet, "/owners/99/businesses", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdate(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	seed(t, r, 1)

	body := payload(2)
	body["name"] = "Heart"
	w := do(r, http.MethodPut, "/businesses/1", body)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	decode(t, do(r, http.MethodGet, "/businesses/1", nil), &got)
	assert.Equal(t, "Heart", got["name"])
	assert.EqualValues(t, 2, got["owner_id"])
}

func TestUpdateValidationBeforeExistence(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	body := payload(1)
	delete(body, "city")
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/businesses/7", body).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/businesses/7", payload(1)).Code)
}

func TestDelete(t *testing.T) {
	r, _ := newRouter(dbtest.NewMem())
	seed(t, r, 1)

	w := do(r, http.MethodDelete, "/businesses/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/businesses/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/businesses/1", nil).Code)
}
