package models

import "time"

// Day-of-week values derived from a schedule's date.
const (
	Sunday    = "SUNDAY"
	Monday    = "MONDAY"
	Tuesday   = "TUESDAY"
	Wednesday = "WEDNESDAY"
	Thursday  = "THURSDAY"
	Friday    = "FRIDAY"
	Saturday  = "SATURDAY"
)

var daysOfWeek = [7]string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayOfWeekFor maps a timestamp to its day-of-week tag (UTC).
func DayOfWeekFor(t time.Time) string {
	return daysOfWeek[int(t.UTC().Weekday())]
}

// Periods are the nightly time slots a schedule can occupy.
const (
	PeriodNight1 = "PERIOD_NIGHT_1"
	PeriodNight2 = "PERIOD_NIGHT_2"
	PeriodNight3 = "PERIOD_NIGHT_3"
	PeriodNight4 = "PERIOD_NIGHT_4"
	PeriodNight5 = "PERIOD_NIGHT_5"
)

// TimeSlot describes the wall-clock window of a period.
type TimeSlot struct {
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	DurationInMinutes int    `json:"duration_in_minutes"`
}

// TimeSlots maps each period to its configured window.
var TimeSlots = map[string]TimeSlot{
	PeriodNight1: {StartTime: "18:20", EndTime: "19:10", DurationInMinutes: 50},
	PeriodNight2: {StartTime: "19:10", EndTime: "20:00", DurationInMinutes: 50},
	PeriodNight3: {StartTime: "20:10", EndTime: "21:00", DurationInMinutes: 50},
	PeriodNight4: {StartTime: "21:00", EndTime: "21:50", DurationInMinutes: 50},
	PeriodNight5: {StartTime: "21:50", EndTime: "22:40", DurationInMinutes: 50},
}

// Schedule lifecycle statuses.
const (
	StatusPending   = "PENDING"
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
)

// Subject tags a teacher can offer and a schedule can cover.
const (
	SubjectAlgorithms          = "ALGORITHMS"
	SubjectDataStructures      = "DATA_STRUCTURES"
	SubjectDatabases           = "DATABASES"
	SubjectOperatingSystems    = "OPERATING_SYSTEMS"
	SubjectComputerNetworks    = "COMPUTER_NETWORKS"
	SubjectSoftwareEngineering = "SOFTWARE_ENGINEERING"
)
