package schedule

// Schedule is one named, time-windowed thermostat configuration.
type Schedule struct {
	ID              string   `json:"id"`
	EventName       string   `json:"event_name"`
	ScheduleType    string   `json:"schedule_type"`
	RepeatFrequency string   `json:"repeat_frequency"`
	TimeSetting     string   `json:"time_setting"`
	StartTime       *string  `json:"start_time"`
	EndTime         *string  `json:"end_time"`
	Settings        Settings `json:"settings"`
	DaysOfWeek      []string `json:"days_of_week"`
	IsDefault       bool     `json:"is_default"`
	ExcludeDates    []string `json:"exclude_dates"`
}

// Settings holds the HVAC control fields. Clients send everything as
// strings, including the setpoints, so they stay strings here.
type Settings struct {
	SystemMode       string `json:"system_mode"`
	HeatSetpoint     string `json:"heat_setpoint"`
	CoolSetpoint     string `json:"cool_setpoint"`
	Fan              string `json:"fan"`
	HumiditySetpoint string `json:"humidity_setpoint"`
	VentilationRate  string `json:"ventilation_rate"`
}

type Document struct {
	Schedules []Schedule `json:"schedules"`
	Metadata  Metadata   `json:"metadata"`
}

type Metadata struct {
	Version   string `json:"version"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

const (
	// MetadataVersion is the envelope version stamped on synthesized and
	// migrated documents.
	MetadataVersion = "1.0"

	// MetadataTimestamp is the fixed bookkeeping timestamp for synthesized
	// and migrated documents. Metadata is not enforced beyond presence.
	MetadataTimestamp = "2025-07-25T21:30:00.000000"

	// DefaultScheduleID is the id of the synthesized fallback schedule.
	DefaultScheduleID = "unoccupied-default"

	// LegacyScheduleID is assigned to the single entry of a migrated
	// legacy document, overwriting any id already present.
	LegacyScheduleID = "1"
)

// DefaultDocument returns the document persisted on first load: a single
// all-day "Unoccupied" schedule marked as the default.
func DefaultDocument() Document {
	return Document{
		Schedules: []Schedule{
			{
				ID:              DefaultScheduleID,
				EventName:       "Unoccupied",
				ScheduleType:    "thermostat",
				RepeatFrequency: "daily",
				TimeSetting:     "all_day",
				Settings: Settings{
					SystemMode:       "Heat",
					HeatSetpoint:     "65",
					CoolSetpoint:     "78",
					Fan:              "auto",
					HumiditySetpoint: "45",
					VentilationRate:  "0",
				},
				DaysOfWeek:   []string{},
				IsDefault:    true,
				ExcludeDates: []string{},
			},
		},
		Metadata: Metadata{
			Version:   MetadataVersion,
			CreatedAt: MetadataTimestamp,
			UpdatedAt: MetadataTimestamp,
		},
	}
}
