package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File points at an optional TOML file holding flag defaults.
type File struct {
	Path string
}

// Flags returns CLI flags for the defaults file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML file with default settings",
			Destination: &c.Path,
			Sources:     cli.EnvVars("NAMEDSEQ_CONFIG"),
		},
	}
}

// Defaults mirrors the TOML layout of the defaults file.
type Defaults struct {
	Log struct {
		Level string `toml:"level"`
		JSON  bool   `toml:"json"`
	} `toml:"log"`
	Input struct {
		Delim   string   `toml:"delim"`
		Missing []string `toml:"missing"`
	} `toml:"input"`
}

// Load parses the defaults file. It returns nil when no path is set.
func (c *File) Load() (*Defaults, error) {
	if c.Path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Path))
	}

	var d Defaults
	if err := toml.Unmarshal(raw, &d); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Path))
	}
	return &d, nil
}

// Apply loads the defaults file and fills in settings the user did not
// give explicitly. Flags and environment variables win over the file.
func (c *File) Apply(cmd *cli.Command, logger *Logger, input *Input) error {
	d, err := c.Load()
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}

	if d.Log.Level != "" && !cmd.IsSet("log-level") {
		logger.Level = d.Log.Level
	}
	if d.Log.JSON && !cmd.IsSet("log-json") {
		logger.JSON = true
	}
	if d.Input.Delim != "" && !cmd.IsSet("delim") {
		input.Delim = d.Input.Delim
	}
	if len(d.Input.Missing) > 0 && !cmd.IsSet("missing") {
		input.Missing = d.Input.Missing
	}
	return nil
}
