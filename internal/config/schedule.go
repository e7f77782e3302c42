package config

import (
	"os"
	"strconv"
	"time"
)

const (
	reminderHourEnv = "EXTENSION_REMINDER_HOUR"
	timezoneEnv     = "SCHEDULE_TIMEZONE"

	defaultReminderHour = 10
)

type ScheduleConfig struct {
	// ReminderHour is the local hour at which extension reminders fire.
	ReminderHour int

	// Location is the timezone activity dates are interpreted in.
	Location *time.Location
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	reminderHour := defaultReminderHour
	if v := os.Getenv(reminderHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 23 {
			reminderHour = parsed
		}
	}

	loc := time.Local
	if tz := os.Getenv(timezoneEnv); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return nil, ErrInvalidTimezone
		}
		loc = parsed
	}

	return &ScheduleConfig{
		ReminderHour: reminderHour,
		Location:     loc,
	}, nil
}
