package entropy_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/okian/pontoon/internal/domain/entropy"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHostSource_Tuple(t *testing.T) {
	Convey("Given a host source with a fake clock", t, func() {
		ctx := context.Background()
		clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
		source := entropy.NewHostSource(entropy.WithClock(clock))

		Convey("When a tuple is requested", func() {
			tup, err := source.Tuple(ctx, "alice")

			Convey("Then it carries the clock time, the caller, and a fresh nonce", func() {
				So(err, ShouldBeNil)
				So(tup.Now.Equal(clock.Now()), ShouldBeTrue)
				So(tup.Caller, ShouldEqual, "alice")
				So(tup.Nonce, ShouldEqual, 1)
			})
		})

		Convey("When tuples are requested repeatedly", func() {
			first, err := source.Tuple(ctx, "alice")
			So(err, ShouldBeNil)
			second, err := source.Tuple(ctx, "alice")
			So(err, ShouldBeNil)

			Convey("Then the nonce is strictly monotonic", func() {
				So(second.Nonce, ShouldBeGreaterThan, first.Nonce)
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := source.Tuple(cancelled, "alice")

			Convey("Then the source reports unavailability", func() {
				So(err, ShouldEqual, entropy.ErrUnavailable)
			})
		})
	})
}
