package config_test

import (
	"testing"

	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/internal/domain/training"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.MetricsSummary, convey.ShouldBeFalse)
			convey.So(cfg.Packages, convey.ShouldResemble, config.DefaultPackages())
		})

		convey.Convey("Then the default batch converts to domain packages in order", func() {
			pkgs := cfg.TrainingPackages()
			convey.So(pkgs, convey.ShouldHaveLength, 3)
			convey.So(pkgs[0], convey.ShouldResemble, training.Package{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}})
			convey.So(pkgs[1], convey.ShouldResemble, training.Package{Code: "RUN", Data: []float64{15000, 1, 75}})
			convey.So(pkgs[2], convey.ShouldResemble, training.Package{Code: "WLK", Data: []float64{9000, 1, 75, 180}})
		})
	})
}
