package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	ENV         string `json:"env" mapstructure:"env"`
	GatewayURI  string `json:"gateway_uri" mapstructure:"gateway_uri"`
	Merchant    string `json:"merchant" mapstructure:"merchant"`
	CallbackURL string `json:"callback_url" mapstructure:"callback_url"`
	IsTest      bool   `json:"is_test" mapstructure:"is_test"`
	Lazy        bool   `json:"lazy" mapstructure:"lazy"`
	Advanced    bool   `json:"advanced" mapstructure:"advanced"`
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
