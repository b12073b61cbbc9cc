package config

import "github.com/spf13/viper"

// Config holds every setting the api and importer binaries need. Values
// are read from configs/app.env and can be overridden via environment
// variables of the same name.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	NominatimBaseURL string `mapstructure:"NOMINATIM_BASE_URL"`
	MerchantAPIURL   string `mapstructure:"MERCHANT_API_URL"`
	MerchantAPIToken string `mapstructure:"MERCHANT_API_TOKEN"`
	CountryCode      string `mapstructure:"COUNTRY_CODE"`
	LocationFile     string `mapstructure:"LOCATION_FILE"`
	S3Bucket         string `mapstructure:"S3_BUCKET"`
	AWSRegion        string `mapstructure:"AWS_REGION"`
}

// LoadConfig reads configuration from the given directory, letting
// environment variables take precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
