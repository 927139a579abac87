package config

import (
	"github.com/urfave/cli/v3"
)

// Input holds flags shared by every command reading sequence input.
type Input struct {
	Delim   string
	Missing []string
}

// Flags returns CLI flags for input handling
func (c *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "delim",
			Usage:       "Field delimiter; empty treats each line as one value",
			Destination: &c.Delim,
			Sources:     cli.EnvVars("NAMEDSEQ_DELIM"),
		},
		&cli.StringSliceFlag{
			Name:        "missing",
			Usage:       "Values treated as missing (repeatable)",
			Destination: &c.Missing,
			Sources:     cli.EnvVars("NAMEDSEQ_MISSING"),
		},
	}
}

// MissingSet returns the missing values as a set for quick lookup.
func (c *Input) MissingSet() map[string]struct{} {
	if len(c.Missing) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Missing))
	for _, v := range c.Missing {
		set[v] = struct{}{}
	}
	return set
}
