package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"chirp/apperr"
	"chirp/config"
	"chirp/feed"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.New(apperr.ErrNotFound, "user not found"), http.StatusNotFound},
		{"empty result", apperr.New(apperr.ErrEmptyResult, "no tweets to show"), http.StatusNotFound},
		{"forbidden", apperr.New(apperr.ErrForbidden, "not yours"), http.StatusForbidden},
		{"invalid request", apperr.New(apperr.ErrInvalidRequest, "missing word"), http.StatusBadRequest},
		{"store failure", apperr.New(apperr.ErrStoreUnavailable, "find users"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext()
			respondError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRespondErrorBlockedIsNotAFailure(t *testing.T) {
	c, w := testContext()
	respondError(c, &apperr.Blocked{ByTarget: true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blocks you")
}

func TestRespondErrorHidesStoreCause(t *testing.T) {
	c, w := testContext()
	respondError(c, apperr.Wrap(apperr.ErrStoreUnavailable, assert.AnError, "find users"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestParsePage(t *testing.T) {
	old := cfg
	cfg = &config.Config{DefaultPageSize: 10}
	defer func() { cfg = old }()

	cases := []struct {
		name  string
		query string
		want  feed.Page
	}{
		{"defaults", "", feed.Page{Number: 1, Size: 10}},
		{"explicit", "page=3&count=25", feed.Page{Number: 3, Size: 25}},
		{"zero count falls back", "page=2&count=0", feed.Page{Number: 2, Size: 10}},
		{"garbage ignored", "page=x&count=y", feed.Page{Number: 0, Size: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := testContext()
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			assert.Equal(t, tc.want, parsePage(c))
		})
	}
}
