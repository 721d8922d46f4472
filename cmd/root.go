package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "matcher"
)

// Config is the full configuration surface of the matcher, unmarshalled
// from the YAML config file.
type Config struct {
	VacanciesFile  string          `mapstructure:"vacancies-file"`
	CandidatesFile string          `mapstructure:"candidates-file"`
	StatusFile     string          `mapstructure:"status-file"`
	PageSize       int             `mapstructure:"page-size"`
	Status         string          `mapstructure:"status"`
	Matching       *MatchingConfig `mapstructure:"matching"`
	Cache          *CacheConfig    `mapstructure:"cache"`
	AI             *AIConfig       `mapstructure:"ai"`
}

// MatchingConfig exposes the tunable matching constants: the synonym table
// and the similarity thresholds are data, not code.
type MatchingConfig struct {
	Synonyms         map[string][]string `mapstructure:"synonyms"`
	FuzzyFloor       int                 `mapstructure:"fuzzy-floor"`
	StrongThreshold  int                 `mapstructure:"strong-threshold"`
	PartialThreshold int                 `mapstructure:"partial-threshold"`
	LocationPartial  int                 `mapstructure:"location-partial"`
	IndustryNeutral  int                 `mapstructure:"industry-neutral"`
	IndustryPartial  int                 `mapstructure:"industry-partial"`
	Workers          int                 `mapstructure:"workers"`
}

type CacheConfig struct {
	Backend    string `mapstructure:"backend"`
	RedisURL   string `mapstructure:"redis-url"`
	TTLMinutes int    `mapstructure:"ttl-minutes"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "matcher ranks the candidate pool against open vacancies and explains every score",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("cache.redis-url", "MATCHER_REDIS_URL"); err != nil {
		log.Fatalf("binding MATCHER_REDIS_URL environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the rank command.
	if rankCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	return config, nil
}
