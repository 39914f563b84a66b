// Package project implements Output Projection (spec section 4.5):
// grouping committed sessions and input events into day-indexed views.
package project

import (
	"sort"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// ItemKind distinguishes a scheduled work session from a fixed event in
// a day's view.
type ItemKind string

const (
	ItemSession ItemKind = "session"
	ItemEvent   ItemKind = "event"
)

// Item is one entry in a day's view, tagged with its kind and carrying
// whichever underlying record it wraps.
type Item struct {
	Kind      ItemKind
	Start     time.Time
	End       time.Time
	Title     string
	Completed bool
	Session   *domain.Session
	Event     *domain.Event
}

// Day is one calendar day's worth of items, ordered by start instant.
type Day struct {
	Date  time.Time
	Items []Item
}

// Project groups sessions and events into one Day per day of the
// horizon, in order, including days with no items (spec section 4.5).
// tasks supplies the owning Title for each session's TaskID; a session
// whose task is absent from tasks falls back to its TaskID as the title.
func Project(sessions []domain.Session, events []*domain.Event, tasks []*domain.Task, horizonStart time.Time, days int) []Day {
	out := make([]Day, days)
	for i := range out {
		out[i] = Day{Date: horizonStart.AddDate(0, 0, i)}
	}

	titleByTaskID := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titleByTaskID[t.ID] = t.Title
	}

	dayIndex := func(instant time.Time) (int, bool) {
		d := int(instant.Sub(horizonStart).Hours() / 24)
		if d < 0 || d >= days {
			return 0, false
		}
		return d, true
	}

	for i := range sessions {
		s := &sessions[i]
		if idx, ok := dayIndex(s.Start); ok {
			title := domain.CoalesceStr(titleByTaskID[s.TaskID], s.TaskID)
			out[idx].Items = append(out[idx].Items, Item{Kind: ItemSession, Start: s.Start, End: s.End, Title: title, Completed: s.Completed, Session: s})
		}
	}
	for _, e := range events {
		if idx, ok := dayIndex(e.Start); ok {
			title := domain.CoalesceStr(e.Title, e.ID)
			out[idx].Items = append(out[idx].Items, Item{Kind: ItemEvent, Start: e.Start, End: e.End, Title: title, Completed: e.Completed, Event: e})
		}
	}

	for i := range out {
		sort.SliceStable(out[i].Items, func(a, b int) bool {
			items := out[i].Items
			if !items[a].Start.Equal(items[b].Start) {
				return items[a].Start.Before(items[b].Start)
			}
			return items[a].Kind < items[b].Kind
		})
	}
	return out
}
