package deal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/okian/pontoon/internal/domain/deal"
	"github.com/okian/pontoon/internal/domain/entropy"
	. "github.com/smartystreets/goconvey/convey"
)

// failingSource always reports unavailability.
type failingSource struct{}

func (failingSource) Tuple(ctx context.Context, caller string) (entropy.Tuple, error) {
	return entropy.Tuple{}, entropy.ErrUnavailable
}

func TestValue(t *testing.T) {
	Convey("Given a range of entropy tuples", t, func() {
		base := time.Unix(1_700_000_000, 0)

		Convey("When cards are derived across many nonces", func() {
			seen := make(map[int]int)
			for nonce := uint64(1); nonce <= 2000; nonce++ {
				card := deal.Value(entropy.Tuple{Now: base, Caller: "alice", Nonce: nonce})
				So(card, ShouldBeGreaterThanOrEqualTo, deal.MinCard)
				So(card, ShouldBeLessThanOrEqualTo, deal.MaxCard)
				seen[card]++
			}

			Convey("Then every card value in [1,12] occurs", func() {
				for v := deal.MinCard; v <= deal.MaxCard; v++ {
					So(seen[v], ShouldBeGreaterThan, 0)
				}
			})
		})

		Convey("When the same tuple is hashed twice", func() {
			tup := entropy.Tuple{Now: base, Caller: "alice", Nonce: 42}

			Convey("Then the derived card is identical", func() {
				So(deal.Value(tup), ShouldEqual, deal.Value(tup))
			})
		})

		Convey("When only the caller differs", func() {
			a := deal.Value(entropy.Tuple{Now: base, Caller: "alice", Nonce: 7})
			b := deal.Value(entropy.Tuple{Now: base, Caller: "bob", Nonce: 7})
			c := deal.Value(entropy.Tuple{Now: base, Caller: "carol", Nonce: 7})

			Convey("Then results stay within bounds", func() {
				for _, card := range []int{a, b, c} {
					So(card, ShouldBeGreaterThanOrEqualTo, deal.MinCard)
					So(card, ShouldBeLessThanOrEqualTo, deal.MaxCard)
				}
			})
		})
	})
}

func TestEntropyDealer_Deal(t *testing.T) {
	Convey("Given a dealer over a host source with a fake clock", t, func() {
		ctx := context.Background()
		clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
		dealer := deal.NewEntropyDealer(entropy.NewHostSource(entropy.WithClock(clock)))

		Convey("When a card is dealt", func() {
			card, err := dealer.Deal(ctx, "alice")

			Convey("Then it is within card bounds", func() {
				So(err, ShouldBeNil)
				So(card, ShouldBeGreaterThanOrEqualTo, deal.MinCard)
				So(card, ShouldBeLessThanOrEqualTo, deal.MaxCard)
			})
		})

		Convey("When the entropy source is unavailable", func() {
			broken := deal.NewEntropyDealer(failingSource{})
			_, err := broken.Deal(ctx, "alice")

			Convey("Then the failure propagates as a wrapped sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, entropy.ErrUnavailable), ShouldBeTrue)
			})
		})
	})
}
