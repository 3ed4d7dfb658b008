package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"noticeboard/internal/notice"
	"noticeboard/internal/render"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newNoticeRouter(loader NoticeLoader) *gin.Engine {
	r := gin.New()
	h := NewNoticeHandler(loader, render.New(20), 3)
	r.GET("/api/notices", h.GetNotices)
	r.GET("/api/notices/all", h.GetAllNotices)
	r.GET("/api/notices/:position", h.GetNotice)
	r.GET("/fragments/notices", h.GetNoticesFragment)
	r.GET("/fragments/notices/all", h.GetArchiveFragment)
	r.GET("/fragments/notices/:position", h.GetNoticeFragment)
	return r
}

func fragment(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return doc
}

func TestGetNotices_DefaultsToHomeCount(t *testing.T) {
	loader := &fakeNoticeLoader{notices: shown("A", "B", "C", "D", "E")}

	w := serve(newNoticeRouter(loader), "/api/notices")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, loader.opts.MaxResults)
	assert.Equal(t, true, loader.opts.HeaderRow)
	assert.Equal(t, notice.TypeAny, loader.opts.Type)

	var res NoticesResponse
	decode(t, w, &res)
	assert.Equal(t, stateOK, res.State)
	assert.Equal(t, 3, len(res.Notices))
	assert.Equal(t, "A", res.Notices[0].Title)
	assert.Equal(t, 0, res.Notices[0].Position)
}

func TestGetNotices_LimitQuery(t *testing.T) {
	loader := &fakeNoticeLoader{notices: shown("A", "B", "C")}

	w := serve(newNoticeRouter(loader), "/api/notices?limit=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, loader.opts.MaxResults)

	serve(newNoticeRouter(loader), "/api/notices?limit=abc")
	assert.Equal(t, 3, loader.opts.MaxResults)
}

func TestGetNotices_SummaryIsTruncated(t *testing.T) {
	n := shown("A")
	n[0].Description = strings.Repeat("x", 30)
	loader := &fakeNoticeLoader{notices: n}

	var res NoticesResponse
	decode(t, serve(newNoticeRouter(loader), "/api/notices"), &res)

	assert.Equal(t, strings.Repeat("x", 20)+"...", res.Notices[0].Summary)
	assert.Equal(t, strings.Repeat("x", 30), res.Notices[0].Description)
}

func TestGetNotices_Empty(t *testing.T) {
	w := serve(newNoticeRouter(&fakeNoticeLoader{}), "/api/notices")

	assert.Equal(t, http.StatusOK, w.Code)

	var res NoticesResponse
	decode(t, w, &res)
	assert.Equal(t, stateEmpty, res.State)
	assert.Equal(t, render.MessageText(render.MessageEmpty), res.Message)
	assert.Equal(t, 0, len(res.Notices))
}

func TestGetNotices_LoadFailure(t *testing.T) {
	loader := &fakeNoticeLoader{err: errors.Join(notice.ErrNetworkFailure, errors.New("dial tcp: refused"))}

	w := serve(newNoticeRouter(loader), "/api/notices")

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var res map[string]string
	decode(t, w, &res)
	assert.Equal(t, stateError, res["state"])
	assert.Equal(t, render.MessageText(render.MessageLoadFailed), res["error"])
}

func TestGetAllNotices_Unbounded(t *testing.T) {
	loader := &fakeNoticeLoader{notices: shown("A", "B", "C", "D")}

	w := serve(newNoticeRouter(loader), "/api/notices/all")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, loader.opts.MaxResults)

	var res NoticesResponse
	decode(t, w, &res)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, true, res.More)
}

func TestGetNotice(t *testing.T) {
	n := shown("A", "B")
	n[1].Description = "line one\nline two"
	r := newNoticeRouter(&fakeNoticeLoader{notices: n})

	w := serve(r, "/api/notices/1")
	assert.Equal(t, http.StatusOK, w.Code)

	var res NoticeDetailResponse
	decode(t, w, &res)
	assert.Equal(t, "B", res.Title)
	assert.Equal(t, "line one<br>line two", res.Body)

	assert.Equal(t, http.StatusNotFound, serve(r, "/api/notices/2").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, "/api/notices/-1").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, "/api/notices/first").Code)
}

func TestGetNoticesFragment(t *testing.T) {
	r := newNoticeRouter(&fakeNoticeLoader{notices: shown("<strong>A</strong>", "B", "C", "D")})

	w := serve(r, "/fragments/notices")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc := fragment(t, w.Body.String())
	assert.Equal(t, 3, doc.Find(".notice-card").Length())
	assert.Equal(t, 1, doc.Find(".notice-card h3 strong").Length())
}

func TestGetNoticesFragment_LoadFailure(t *testing.T) {
	r := newNoticeRouter(&fakeNoticeLoader{err: notice.ErrMalformedInput})

	w := serve(r, "/fragments/notices")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	doc := fragment(t, w.Body.String())
	assert.Equal(t, render.MessageText(render.MessageLoadFailed), doc.Find(".notice-message").Text())
}

func TestGetArchiveFragment(t *testing.T) {
	w := serve(newNoticeRouter(&fakeNoticeLoader{notices: shown("A", "B", "C", "D")}), "/fragments/notices/all")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, fragment(t, w.Body.String()).Find(".archive-item").Length())

	w = serve(newNoticeRouter(&fakeNoticeLoader{notices: shown("A", "B", "C")}), "/fragments/notices/all")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, render.MessageText(render.MessageNoMore), fragment(t, w.Body.String()).Find(".notice-message").Text())
}

func TestGetNoticeFragment(t *testing.T) {
	r := newNoticeRouter(&fakeNoticeLoader{notices: shown("A", "B")})

	w := serve(r, "/fragments/notices/0")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A details", fragment(t, w.Body.String()).Find(".notice-popup .notice-description").Text())

	w = serve(r, "/fragments/notices/5")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNotices_UnexpectedError(t *testing.T) {
	r := newNoticeRouter(&fakeNoticeLoader{err: errors.New("renderer misconfigured")})

	assert.Equal(t, http.StatusInternalServerError, serve(r, "/api/notices").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, "/fragments/notices").Code)
}
