package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/floorcraft/danceboard/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DANCEBOARD_SOURCE_URL", "https://feed.test/events.json")
	t.Setenv("DANCEBOARD_ADDR", ":9090")
	t.Setenv("DANCEBOARD_RETRY_MAX", "2")
	t.Setenv("DANCEBOARD_REFRESH_CRON", "0 * * * *")

	Convey("Given configuration in the environment", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.SourceURL, ShouldEqual, "https://feed.test/events.json")
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.RetryMax, ShouldEqual, 2)
				So(cfg.RefreshCron, ShouldEqual, "0 * * * *")
				So(cfg.RequestTimeoutMS, ShouldEqual, 10_000) // untouched default
			})
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "danceboard.yaml")
	yaml := "source_url: https://file.test/events.json\naddr: \":7070\"\ncommunity_url: https://chat.test/dancers\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DANCEBOARD_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values apply over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.SourceURL, ShouldEqual, "https://file.test/events.json")
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.CommunityURL, ShouldEqual, "https://chat.test/dancers")
			})
		})
	})
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "danceboard.yaml")
	yaml := "source_url: https://file.test/events.json\naddr: \":7070\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DANCEBOARD_CONFIG", path)
	t.Setenv("DANCEBOARD_ADDR", ":6060")

	Convey("Given both a file and env", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env wins over the file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.SourceURL, ShouldEqual, "https://file.test/events.json")
			})
		})
	})
}

func TestLoadMissingSource(t *testing.T) {
	Convey("Given no source_url anywhere", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then an invalid-config error is reported", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("DANCEBOARD_SOURCE_URL", "https://feed.test/events.json")
	t.Setenv("DANCEBOARD_RETRY_MAX", "-1")

	Convey("Given a negative retry_max", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then an invalid-config error is reported", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
