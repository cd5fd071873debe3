package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/pontoon/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When an unknown player is fetched", func() {
			_, err := store.Get(ctx, "ghost")

			Convey("Then it reports not found", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When a record is stored and fetched", func() {
			So(store.Put(ctx, "p1", repository.Record{Score: 15}), ShouldBeNil)
			rec, err := store.Get(ctx, "p1")

			Convey("Then the stored record comes back", func() {
				So(err, ShouldBeNil)
				So(rec, ShouldResemble, repository.Record{Score: 15})
			})

			Convey("And a second put replaces it", func() {
				So(store.Put(ctx, "p1", repository.Record{Score: 22, Busted: true}), ShouldBeNil)
				rec, err := store.Get(ctx, "p1")
				So(err, ShouldBeNil)
				So(rec, ShouldResemble, repository.Record{Score: 22, Busted: true})
			})
		})

		Convey("When several players are tracked", func() {
			So(store.Put(ctx, "a", repository.Record{Score: 10}), ShouldBeNil)
			So(store.Put(ctx, "b", repository.Record{Score: 21}), ShouldBeNil)
			So(store.Put(ctx, "c", repository.Record{Score: 25, Busted: true}), ShouldBeNil)

			Convey("Then counts split active from busted", func() {
				active, busted := store.Count(ctx)
				So(active, ShouldEqual, 2)
				So(busted, ShouldEqual, 1)
			})
		})
	})
}
