// Package fixtures holds calendar documents for split tests, both embedded
// files and a programmatic generator for larger inputs.
package fixtures

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Calendar builds a calendar with n hour-long events on consecutive days.
// A non-empty payload pads every event's description so size-based splits
// have bulk to cut through.
func Calendar(n int, payload string) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		event := cal.AddEvent(uuid.NewString())
		event.SetCreatedTime(start)
		event.SetDtStampTime(start)
		event.SetStartAt(start.AddDate(0, 0, i))
		event.SetEndAt(start.AddDate(0, 0, i).Add(time.Hour))
		event.SetSummary(fmt.Sprintf("Event %d", i+1))
		if payload != "" {
			event.SetDescription(payload)
		}
	}

	return []byte(cal.Serialize())
}
