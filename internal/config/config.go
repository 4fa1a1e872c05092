package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds every setting the binary reads from the environment. The backend
// API owns persistence, payments and availability; the only hard requirement
// here is knowing where to reach it.
type App struct {
	// Backend API
	APIBaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:5000"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`

	// HTTP server
	Host              string `envconfig:"HOST" default:"localhost"`
	Port              string `envconfig:"PORT" default:"3000"`
	ReadHeaderTimeout int    `envconfig:"READ_HEADER_TIMEOUT_SEC" default:"20"`

	// Site content
	ContentPath string `envconfig:"CONTENT_PATH"` // empty means embedded default

	Debug bool `envconfig:"DEBUG" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)

	return c, err
}
