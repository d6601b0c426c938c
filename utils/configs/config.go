package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	ENV         string          `json:"env" mapstructure:"env"`
	MaxPoolSize int             `json:"max_pool_size" mapstructure:"max_pool_size"`
	Directory   DirectoryConfig `json:"directory" mapstructure:"directory"`
	Logo        LogoConfig      `json:"logo" mapstructure:"logo"`
	Render      RenderConfig    `json:"render" mapstructure:"render"`
}

// DirectoryConfig selects the bank dataset source. MongoURI takes precedence
// when set, then DatasetPath, otherwise the embedded dataset is used.
type DirectoryConfig struct {
	DatasetPath string `json:"dataset_path" mapstructure:"dataset_path"`
	MongoURI    string `json:"mongo_uri" mapstructure:"mongo_uri"`
	DBName      string `json:"db_name" mapstructure:"db_name"`
}

// LogoConfig - CacheKey is the only invalidation knob: a stored value is
// trusted indefinitely, so version the key when the asset changes.
type LogoConfig struct {
	URL      string `json:"url" mapstructure:"url"`
	CacheKey string `json:"cache_key" mapstructure:"cache_key"`
	CacheDir string `json:"cache_dir" mapstructure:"cache_dir"`
}

type RenderConfig struct {
	Width int `json:"width" mapstructure:"width"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
