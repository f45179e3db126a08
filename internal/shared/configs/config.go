package configs

// Config holds all configuration for one run of the tool. Keys match the
// command-line flag names.
type Config struct {
	Files              []string `mapstructure:"file" validate:"required,min=1,dive,required"`
	Report             string   `mapstructure:"report" validate:"required"`
	Date               string   `mapstructure:"date" validate:"omitempty,datetime=2006-01-02"`
	OnInvalidTimestamp string   `mapstructure:"on-invalid-timestamp" validate:"required,oneof=fail skip"`
	LogLevel           string   `mapstructure:"log-level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Progress           bool     `mapstructure:"progress"`
	Metrics            bool     `mapstructure:"metrics"`
}
