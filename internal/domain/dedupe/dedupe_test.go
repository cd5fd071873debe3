package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/okian/pontoon/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLRUGuard(t *testing.T) {
	Convey("Given a replay guard with room for three ids", t, func() {
		ctx := context.Background()
		guard, err := dedupe.NewLRUGuard(3)
		So(err, ShouldBeNil)

		Convey("When an id is recorded for the first time", func() {
			So(guard.SeenAndRecord(ctx, "req-1"), ShouldBeFalse)

			Convey("Then a replay of the same id is detected", func() {
				So(guard.SeenAndRecord(ctx, "req-1"), ShouldBeTrue)
				So(guard.Size(), ShouldEqual, 1)
			})
		})

		Convey("When more ids than capacity are recorded", func() {
			for i := 0; i < 5; i++ {
				So(guard.SeenAndRecord(ctx, fmt.Sprintf("req-%d", i)), ShouldBeFalse)
			}

			Convey("Then the cache stays bounded and old ids age out", func() {
				So(guard.Size(), ShouldEqual, 3)
				// req-0 was evicted, so it reads as unseen again.
				So(guard.SeenAndRecord(ctx, "req-0"), ShouldBeFalse)
			})
		})

		Convey("When the requested capacity is invalid", func() {
			_, err := dedupe.NewLRUGuard(0)

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
