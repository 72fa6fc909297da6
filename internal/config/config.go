// Package config loads learntrack settings from defaults, an optional YAML
// file, LEARNTRACK_ environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/conorfennell/learntrack/internal/domain"
)

// EnvPrefix is the prefix of environment variables read by Load. A double
// underscore separates nested keys, e.g. LEARNTRACK_LOG__LEVEL.
const EnvPrefix = "LEARNTRACK_"

// Config holds application configuration.
type Config struct {
	Addr     string         `koanf:"addr" validate:"required,hostname_port"`
	ItemsDir string         `koanf:"items_dir" validate:"omitempty,dir"`
	Report   bool           `koanf:"report"`
	Log      LogConfig      `koanf:"log"`
	Profile  ProfileConfig  `koanf:"profile"`
	Schedule ScheduleConfig `koanf:"schedule"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// ProfileConfig is the child profile a session starts with.
type ProfileConfig struct {
	Name       string `koanf:"name" validate:"max=64"`
	DailyGoal  int    `koanf:"daily_goal" validate:"gte=0"`
	WeeklyGoal int    `koanf:"weekly_goal" validate:"gte=0"`
}

// ScheduleConfig overrides the display label of each time slot.
type ScheduleConfig struct {
	Morning   string `koanf:"morning" validate:"required"`
	Afternoon string `koanf:"afternoon" validate:"required"`
	Evening   string `koanf:"evening" validate:"required"`
	Night     string `koanf:"night" validate:"required"`
	EndOfDay  string `koanf:"end_of_day" validate:"required"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	labels := domain.DefaultSchedule()
	return Config{
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Profile: ProfileConfig{
			DailyGoal:  domain.DefaultDailyGoal,
			WeeklyGoal: domain.DefaultWeeklyGoal,
		},
		Schedule: ScheduleConfig{
			Morning:   labels[domain.SlotMorning],
			Afternoon: labels[domain.SlotAfternoon],
			Evening:   labels[domain.SlotEvening],
			Night:     labels[domain.SlotNight],
			EndOfDay:  labels[domain.SlotEndOfDay],
		},
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"addr":      "addr",
	"items-dir": "items_dir",
	"report":    "report",
	"log-level": "log.level",
	"log-json":  "log.format",
	"name":      "profile.name",
}

// NewFlagSet declares the command-line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	def := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Path to a YAML config file")
	fs.String("addr", def.Addr, "Address for the web UI to listen on")
	fs.String("items-dir", def.ItemsDir, "Directory of *.md item files (sample items when empty)")
	fs.Bool("report", def.Report, "Print a performance report and exit")
	fs.String("log-level", def.Log.Level, "Log level: debug, info, warn or error")
	fs.Bool("log-json", false, "Log as JSON instead of text")
	fs.String("name", def.Profile.Name, "Child's name")
	return fs
}

// Load parses args with fs and merges every configuration source.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")

	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagValue(fs)), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load flags: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey turns LEARNTRACK_LOG__LEVEL into log.level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// flagValue maps a flag to its config key. Unknown flags are skipped.
func flagValue(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		if f.Name == "log-json" {
			if f.Value.String() == "true" {
				return key, "json"
			}
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg and reports every invalid field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// StartProfile returns the configured starting profile.
func (c Config) StartProfile() domain.ChildProfile {
	return domain.ChildProfile{
		Name:       c.Profile.Name,
		DailyGoal:  c.Profile.DailyGoal,
		WeeklyGoal: c.Profile.WeeklyGoal,
	}
}

// StartSchedule returns the configured slot labels.
func (c Config) StartSchedule() domain.Schedule {
	return domain.Schedule{
		domain.SlotMorning:   c.Schedule.Morning,
		domain.SlotAfternoon: c.Schedule.Afternoon,
		domain.SlotEvening:   c.Schedule.Evening,
		domain.SlotNight:     c.Schedule.Night,
		domain.SlotEndOfDay:  c.Schedule.EndOfDay,
	}
}

// Logger builds the slog logger described by the log settings.
func (c Config) Logger() *slog.Logger {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
