// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("server.url", "http://127.0.0.1:8000")
	viper.SetDefault("server.timeout", 120)

	viper.SetDefault("realtime.statusinterval", 5)

	viper.SetDefault("labeling.defaultmodel", "gpt-4")

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.path", "labelctl.log")
}
