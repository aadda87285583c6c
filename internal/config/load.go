package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Target describes one benchmarked system: its command lines and the
// cache artifacts that define its cold condition.
type Target struct {
	TrainCmd   string
	PredictCmd string
	CacheFiles []string
	ResetCmd   string
}

// Config is the typed view of the harness configuration.
type Config struct {
	Trials       int
	Shell        string
	PollInterval time.Duration
	Timeout      time.Duration
	HistoryFile  string
	MetricsAddr  string
	Artifacts    []string
	Targets      map[string]Target
}

// The default targets mirror the historical vw-vs-fw training comparison,
// so a bare checkout reproduces the published numbers.
const (
	vwTrainCmd   = "vw --data train.vw.gz -l 0.1 -b 25 -c --adaptive --sgd --loss_function logistic --link logistic --power_t 0.0 --l2 0.0 --hash all --final_regressor vw_model --save_resume --interactions AB"
	fwTrainCmd   = "../target/release/fw --data train.vw.gz -l 0.1 -b 25 -c --adaptive --fastmath --sgd --loss_function logistic --link logistic --power_t 0.0 --l2 0.0 --hash all --final_regressor fw_model --save_resume --interactions AB"
	vwPredictCmd = "vw --data easy.vw -t -p vw_preds.out --initial_regressor vw_model --hash all --interactions AB"
	fwPredictCmd = "../target/release/fw --data easy.vw --sgd --adaptive -t -b 25 -p fw_preds.out --initial_regressor fw_model --link logistic --hash all --interactions AB"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; absence is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("fwbench")
	}

	viper.SetEnvPrefix("FWBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("trials", 10)
	viper.SetDefault("shell", "/bin/sh")
	viper.SetDefault("poll_interval_ms", 50)
	viper.SetDefault("timeout", 0)
	viper.SetDefault("history_file", ".fwbench/history.json")
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("artifacts", []string{
		"train.vw",
		"train.vw.gz",
		"train.vw.gz.cache",
		"train.vw.gz.fwcache",
		"easy.vw",
		"hard.vw",
	})

	viper.SetDefault("targets.vw.train_cmd", vwTrainCmd)
	viper.SetDefault("targets.vw.predict_cmd", vwPredictCmd)
	viper.SetDefault("targets.vw.cache_files", []string{"train.vw.gz.cache"})
	viper.SetDefault("targets.fw.train_cmd", fwTrainCmd)
	viper.SetDefault("targets.fw.predict_cmd", fwPredictCmd)
	viper.SetDefault("targets.fw.cache_files", []string{"train.vw.gz.fwcache"})

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// FromViper materializes the typed configuration.
func FromViper() Config {
	cfg := Config{
		Trials:       viper.GetInt("trials"),
		Shell:        viper.GetString("shell"),
		PollInterval: time.Duration(viper.GetInt("poll_interval_ms")) * time.Millisecond,
		Timeout:      time.Duration(viper.GetInt("timeout")) * time.Second,
		HistoryFile:  viper.GetString("history_file"),
		MetricsAddr:  viper.GetString("metrics_addr"),
		Artifacts:    viper.GetStringSlice("artifacts"),
		Targets:      make(map[string]Target),
	}
	// AllSettings merges defaults with file/env/override layers, so
	// configured targets extend the built-in vw/fw pair
	targets, _ := viper.AllSettings()["targets"].(map[string]interface{})
	for name := range targets {
		key := "targets." + name
		cfg.Targets[name] = Target{
			TrainCmd:   viper.GetString(key + ".train_cmd"),
			PredictCmd: viper.GetString(key + ".predict_cmd"),
			CacheFiles: viper.GetStringSlice(key + ".cache_files"),
			ResetCmd:   viper.GetString(key + ".reset_cmd"),
		}
	}
	return cfg
}
