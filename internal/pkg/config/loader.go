package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ConfigFileEnvVar names the environment variable selecting the settings file
const ConfigFileEnvVar = "CRYPTO_SUITE_CONFIG"

// DefaultConfigFile is read when neither a path nor the environment variable is given
const DefaultConfigFile = "appsettings.json"

// ResolveConfigPath returns path, else the environment variable, else DefaultConfigFile
func ResolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(ConfigFileEnvVar); env != "" {
		return env
	}
	return DefaultConfigFile
}

func setCryptoDefaults(vp *viper.Viper, prefix string) {
	d := DefaultCryptoSettings()
	vp.SetDefault(prefix+"KeyDirectory", d.KeyDirectory)
	vp.SetDefault(prefix+"AES.KeySize", d.AES.KeySize)
	vp.SetDefault(prefix+"AES.Encoding", d.AES.Encoding)
	vp.SetDefault(prefix+"RSA.KeySize", d.RSA.KeySize)
	vp.SetDefault(prefix+"RSA.Encoding", d.RSA.Encoding)
	vp.SetDefault(prefix+"ECC.Curve", d.ECC.Curve)
	vp.SetDefault(prefix+"ECC.Encoding", d.ECC.Encoding)
	vp.SetDefault(prefix+"UseUrlSafeBase64", d.UseURLSafeBase64)
}

func readConfig(path string) (*viper.Viper, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error while processing config file %s: %w", path, err)
	}
	return vp, nil
}

// LoadCryptoSettings reads the CryptoSuite section of a JSON or YAML file.
// A missing section is an error; missing keys inside it take their defaults.
func LoadCryptoSettings(path string) (*CryptoSettings, error) {
	path = ResolveConfigPath(path)
	vp, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	if !vp.IsSet("CryptoSuite") {
		return nil, fmt.Errorf("config file %s has no CryptoSuite section", path)
	}

	setCryptoDefaults(vp, "CryptoSuite.")

	// Unmarshal merges defaults per key, UnmarshalKey would not
	var file struct {
		CryptoSuite CryptoSettings `mapstructure:"CryptoSuite"`
	}
	if err := vp.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("could not unmarshal CryptoSuite section: %w", err)
	}
	settings := file.CryptoSuite
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// InitializeRestConfig reads the full REST server configuration
func InitializeRestConfig(path string) (*RestConfig, error) {
	path = ResolveConfigPath(path)
	vp, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	setCryptoDefaults(vp, "CryptoSuite.")
	vp.SetDefault("Port", DefaultPort)
	vp.SetDefault("Logger.log_level", LogLevelInfo)
	vp.SetDefault("Logger.log_type", LogTypeConsole)
	vp.SetDefault("Logger.max_size", DefaultLogMaxSizeMB)
	vp.SetDefault("Logger.max_backups", DefaultLogMaxBackups)
	vp.SetDefault("Logger.max_age", DefaultLogMaxAgeDays)
	vp.SetDefault("Database.type", SqliteDbType)
	vp.SetDefault("Database.dsn", "catalog.db")

	var cfg RestConfig
	if err := vp.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
