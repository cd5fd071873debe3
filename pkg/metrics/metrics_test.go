package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/pontoon/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When it is constructed with options", func() {
			m := metrics.NewManager(
				metrics.WithNamespace("test"),
				metrics.WithSubsystem("table"),
				metrics.WithHistogramBuckets([]float64{1, 5, 10}),
				metrics.WithPrometheusRegistry(reg),
			)

			Convey("Then all metrics register without collision", func() {
				So(m, ShouldNotBeNil)
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the package-level metrics", t, func() {
		Convey("When business events are recorded", func() {
			So(func() {
				metrics.RecordCardDealt(7)
				metrics.RecordBust()
				metrics.RecordGuardSkip()
				metrics.RecordPromotion()
				metrics.RecordEviction()
				metrics.RecordLeaderboardEvent()
				metrics.RecordEntropyFailure()
				metrics.RecordReplayHit()
			}, ShouldNotPanic)
		})

		Convey("When gauges and HTTP metrics are updated", func() {
			So(func() {
				metrics.UpdateActivePlayers(3)
				metrics.UpdateBustedPlayers(1)
				metrics.RecordHTTPRequest("draw", "POST", "200")
				metrics.RecordHTTPRequestDuration("draw", "POST", "200", 1.5)
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(10)
			}, ShouldNotPanic)
		})

		Convey("When the service registry is gathered", func() {
			families, err := metrics.GetRegistry().Gather()

			Convey("Then the recorded metrics are exposed", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["pontoon_table_cards_dealt_total"], ShouldBeTrue)
				So(names["pontoon_table_busts_total"], ShouldBeTrue)
				So(names["pontoon_table_active_players"], ShouldBeTrue)
			})
		})
	})
}
