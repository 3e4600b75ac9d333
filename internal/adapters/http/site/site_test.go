package site_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	site "github.com/floorcraft/danceboard/internal/adapters/http/site"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteRegister(t *testing.T) {
	Convey("Given the embedded site registered on a mux", t, func() {
		mux := http.NewServeMux()
		site.Register(context.Background(), mux)

		Convey("When requesting the index page", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			Convey("Then the UI shell is served with its five filter inputs", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				body, err := io.ReadAll(rec.Body)
				So(err, ShouldBeNil)
				page := string(body)
				So(page, ShouldContainSubstring, "Dance Event Directory")
				for _, id := range []string{"filter-name", "filter-start", "filter-end", "filter-location", "filter-url"} {
					So(page, ShouldContainSubstring, id)
				}
				So(page, ShouldContainSubstring, `class="expanded"`)
			})
		})

		Convey("When requesting the static assets", func() {
			for _, path := range []string{"/app.js", "/styles.css"} {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
				So(rec.Code, ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestSiteRegisterNilMux(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		Convey("Then Register panics", func() {
			So(func() { site.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
