package env

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Env struct {
	DockerHost   string
	OTLPEndpoint string
}

var Vars = &Env{}

// Init initializes environment variable configuration
func Init() {
	viper.SetEnvPrefix("DOCKHAND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// DOCKER_HOST is not prefixed with DOCKHAND_ in order to be shared
	// seamlessly with the rest of the Docker tooling
	Vars = &Env{
		DockerHost:   os.Getenv("DOCKER_HOST"),
		OTLPEndpoint: viper.GetString("otlp_endpoint"),
	}
}
