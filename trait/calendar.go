package trait

import (
	"github.com/taro-engine/taro/cost"
	"github.com/taro-engine/taro/model"
)

// Calendar is the temporal-calendar capability: which wall-clock
// interpretation the Cost Engine applies to an entry tick when deriving
// day-of-week and bucket index (spec §2, §9 "temporal calendar
// (UTC/linear)").
type Calendar interface {
	ID() string
	Validate(store *model.Store) error
	Option() cost.Option
}

// UTCCalendar interprets ticks as true Unix epoch values in the model's
// declared profile_timezone (spec §4.3, §4.7). This is the default a Model
// Store already enforces at load (a valid IANA zone is a load-time
// contract), so Validate has nothing further to check.
type UTCCalendar struct{}

func (UTCCalendar) ID() string                      { return "UTC" }
func (UTCCalendar) Validate(*model.Store) error      { return nil }
func (UTCCalendar) Option() cost.Option              { return cost.WithCalendar(cost.CalendarUTC) }

// LinearCalendar treats the tick stream as a synthetic clock with no
// timezone conversion, tick 0 landing on a Monday. Appropriate for models
// whose ticks are a simulation clock rather than a true Unix epoch, where
// routing a tick through time.Time/IANA-zone conversion would be
// meaningless.
type LinearCalendar struct{}

func (LinearCalendar) ID() string                 { return "LINEAR" }
func (LinearCalendar) Validate(*model.Store) error { return nil }
func (LinearCalendar) Option() cost.Option         { return cost.WithCalendar(cost.CalendarLinear) }
