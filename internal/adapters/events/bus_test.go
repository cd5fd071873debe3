package events_test

import (
	"testing"

	"github.com/okian/pontoon/internal/adapters/events"
	"github.com/okian/pontoon/internal/domain/podium"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBus(t *testing.T) {
	Convey("Given a bus with subscribers on both topics", t, func() {
		bus := events.NewBus()
		var cards []events.CardDealt
		var boards []events.LeaderboardChanged

		bus.Subscribe(events.TopicCardDealt, func(payload interface{}) {
			if e, ok := payload.(events.CardDealt); ok {
				cards = append(cards, e)
			}
		})
		bus.Subscribe(events.TopicLeaderboardChanged, func(payload interface{}) {
			if e, ok := payload.(events.LeaderboardChanged); ok {
				boards = append(boards, e)
			}
		})

		Convey("When card events are published", func() {
			bus.Publish(events.TopicCardDealt, events.CardDealt{Player: "p1", Value: 7})
			bus.Publish(events.TopicCardDealt, events.CardDealt{Player: "p2", Value: 3})

			Convey("Then subscribers see them in publication order", func() {
				So(cards, ShouldResemble, []events.CardDealt{
					{Player: "p1", Value: 7},
					{Player: "p2", Value: 3},
				})
			})

			Convey("And the other topic stays silent", func() {
				So(boards, ShouldBeEmpty)
			})
		})

		Convey("When a board snapshot is published", func() {
			snapshot := [podium.Size]podium.Slot{{Player: "p1", Score: 10}}
			bus.Publish(events.TopicLeaderboardChanged, events.LeaderboardChanged{Slots: snapshot})

			Convey("Then the full snapshot is delivered", func() {
				So(len(boards), ShouldEqual, 1)
				So(boards[0].Slots, ShouldResemble, snapshot)
			})
		})

		Convey("When multiple handlers share a topic", func() {
			var second []events.CardDealt
			bus.Subscribe(events.TopicCardDealt, func(payload interface{}) {
				if e, ok := payload.(events.CardDealt); ok {
					second = append(second, e)
				}
			})
			bus.Publish(events.TopicCardDealt, events.CardDealt{Player: "p3", Value: 1})

			Convey("Then every handler receives the payload", func() {
				So(len(cards), ShouldEqual, 1)
				So(len(second), ShouldEqual, 1)
			})
		})
	})
}
