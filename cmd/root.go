package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/matching"
	"github.com/spigell/remote-matcher/internal/salary"
	"github.com/spigell/remote-matcher/internal/vocabulary"
)

const (
	app       = "remote-matcher"
	envPrefix = "REMOTE_MATCHER"
)

type Config struct {
	Matching *MatchingConfig `mapstructure:"matching"`
	Salary   *SalaryConfig   `mapstructure:"salary"`
}

type MatchingConfig struct {
	Limit    int     `mapstructure:"limit"`
	MinScore float64 `mapstructure:"min-score"`
	Workers  int     `mapstructure:"workers"`
}

type SalaryConfig struct {
	DisabledSteps []string `mapstructure:"disabled-steps"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "remote-matcher scores candidate profiles against job postings and estimates salaries",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is remote-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("matching.limit", 10)
	v.SetDefault("matching.min-score", 0.0)
	v.SetDefault("matching.workers", 4)
	v.SetDefault("salary.disabled-steps", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func initConfig() {
	if versionCmd.CalledAs() != "" {
		return
	}

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		log.Fatal(err)
	}
}

// readConfig loads the config file. An explicit file must exist; the default
// one is optional.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (file != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	err := v.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Matching == nil {
		config.Matching = &MatchingConfig{}
	}
	if config.Salary == nil {
		config.Salary = &SalaryConfig{}
	}

	return config, nil
}

// loadTables decodes the vocabulary section over the stock tables, so a config
// only has to name what it changes. Lists and maps that are named replace the
// stock ones.
func loadTables(v *viper.Viper) (vocabulary.Tables, error) {
	tables := vocabulary.Default()

	if raw := v.Get("vocabulary"); raw != nil {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &tables,
			TagName:          "mapstructure",
			WeaklyTypedInput: true,
			ZeroFields:       true,
		})
		if err != nil {
			return tables, err
		}
		if err := decoder.Decode(raw); err != nil {
			return tables, fmt.Errorf("decoding vocabulary: %w", err)
		}
	}

	if err := tables.Validate(); err != nil {
		return tables, fmt.Errorf("invalid vocabulary: %w", err)
	}
	return tables, nil
}

// session is what every engine command needs.
type session struct {
	logger    *zap.Logger
	config    *Config
	engine    *matching.Engine
	predictor *salary.Predictor
}

func newSession() *session {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	tables, err := loadTables(viper.GetViper())
	if err != nil {
		logger.Fatal("loading vocabulary", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return &session{
		logger:    logger,
		config:    config,
		engine:    matching.NewEngine(tables, logger, matching.WithWorkers(config.Matching.Workers)),
		predictor: salary.NewPredictor(tables, logger, salary.WithDisabledSteps(config.Salary.DisabledSteps...)),
	}
}

func printJSON(v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(pretty))
	return err
}
