// Package config handles configuration for the top-up report tool,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for a report run.
//
// Fields:
//   - UsersFile: path to the users JSON array.
//   - CompaniesFile: path to the companies JSON array.
//   - OutputFile: path of the rendered report; replaced atomically on success.
type Config struct {
	UsersFile     string
	CompaniesFile string
	OutputFile    string
}

// LoadDefaults populates c with the conventional file names, all resolved
// against the working directory. A zero-argument invocation therefore reads
// users.json and companies.json and writes output.txt.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.json"
	c.CompaniesFile = "companies.json"
	c.OutputFile = "output.txt"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
