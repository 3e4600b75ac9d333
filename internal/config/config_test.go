package config_test

import (
	"testing"

	"github.com/floorcraft/danceboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.SourceURL, convey.ShouldEqual, "")
			convey.So(cfg.RequestTimeoutMS, convey.ShouldEqual, 10_000)
			convey.So(cfg.RetryMax, convey.ShouldEqual, 0)
			convey.So(cfg.RefreshCron, convey.ShouldEqual, "")
		})
	})
}
