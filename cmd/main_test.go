package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/internal/domain/training"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	convey.Convey("Given the fitness tracker command", t, func() {
		var logs bytes.Buffer
		convey.So(logger.Init(logger.WithOutput(&logs), logger.WithCaller(false)), convey.ShouldBeNil)
		ctx := context.Background()
		var out bytes.Buffer

		convey.Convey("When running with the built-in batch", func() {
			clearEnv()
			err := run(ctx, &out)

			convey.Convey("Then the three reference lines are printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.String(), convey.ShouldEqual,
					"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n"+
						"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n"+
						"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n")
			})

			convey.Convey("And logs stay out of the report", func() {
				convey.So(out.String(), convey.ShouldNotContainSubstring, "level=")
				convey.So(logs.String(), convey.ShouldContainSubstring, "sensor batch done")
			})
		})

		convey.Convey("When the metrics summary is enabled", func() {
			_ = os.Setenv("FITNESS_METRICS_SUMMARY", "true")
			_ = os.Setenv("FITNESS_LOG_LEVEL", "debug")
			defer clearEnv()

			err := run(ctx, &out)

			convey.Convey("Then the summary is logged", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(logs.String(), convey.ShouldContainSubstring, "metrics summary")
				convey.So(logs.String(), convey.ShouldContainSubstring, "fittrack_calculator_batch_size")
				convey.So(logs.String(), convey.ShouldContainSubstring, "metrics_summary=true")
			})
		})

		convey.Convey("When the config file holds workouts of other durations", func() {
			path := writeConfig("packages:\n" +
				"  - type: SWM\n    data: [720, 2, 80, 25, 40]\n" +
				"  - type: RUN\n    data: [15000, 0.5, 75]\n" +
				"  - type: WLK\n    data: [9000, 1.5, 75, 180]\n")
			defer func() { _ = os.Remove(path) }()
			_ = os.Setenv(config.EnvConfigPath, path)
			defer clearEnv()

			err := run(ctx, &out)

			convey.Convey("Then the lines reflect each duration", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.String(), convey.ShouldEqual,
					"Тип тренировки: Swimming; Длительность: 2.000 ч.; Дистанция: 0.994 км; Ср. скорость: 0.500 км/ч; Потрачено ккал: 256.000.\n"+
						"Тип тренировки: Running; Длительность: 0.500 ч.; Дистанция: 9.750 км; Ср. скорость: 19.500 км/ч; Потрачено ккал: 744.750.\n"+
						"Тип тренировки: SportsWalking; Длительность: 1.500 ч.; Дистанция: 5.850 км; Ср. скорость: 3.900 км/ч; Потрачено ккал: 236.250.\n")
			})
		})

		convey.Convey("When the config file holds an unknown activity code", func() {
			path := writeConfig("packages:\n  - type: BIKE\n    data: [1, 1, 1]\n")
			defer func() { _ = os.Remove(path) }()
			_ = os.Setenv(config.EnvConfigPath, path)
			defer clearEnv()

			err := run(ctx, &out)

			convey.Convey("Then the run fails with the dispatcher error", func() {
				convey.So(errors.Is(err, training.ErrUnknownType), convey.ShouldBeTrue)
				convey.So(out.Len(), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the log level is invalid", func() {
			_ = os.Setenv("FITNESS_LOG_LEVEL", "loud")
			defer clearEnv()

			err := run(ctx, &out)

			convey.Convey("Then it warns and still runs", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(logs.String(), convey.ShouldContainSubstring, "invalid log_level")
			})
		})

		convey.Convey("When the config file is missing", func() {
			_ = os.Setenv(config.EnvConfigPath, "/non/existent/fittrack.yaml")
			defer clearEnv()

			err := run(ctx, &out)

			convey.Convey("Then the load error is returned", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearEnv() {
	for _, key := range []string{config.EnvConfigPath, "FITNESS_LOG_LEVEL", "FITNESS_METRICS_SUMMARY"} {
		_ = os.Unsetenv(key)
	}
}

func writeConfig(content string) string {
	f, err := os.CreateTemp("", "fittrack-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}
	return f.Name()
}
