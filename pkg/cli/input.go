package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// readValues reads one value per line from r. A non-empty delim splits
// each line into multiple values.
func readValues(r io.Reader, delim string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	values := []string{}
	for scanner.Scan() {
		line := scanner.Text()
		if delim == "" {
			values = append(values, line)
			continue
		}
		values = append(values, strings.Split(line, delim)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read input")
	}
	return values, nil
}

// readLines reads raw lines without delimiter splitting.
func readLines(r io.Reader) ([]string, error) {
	return readValues(r, "")
}

func fileValues(path, delim string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open input file", goerr.V("path", path))
	}
	defer f.Close()
	return readValues(f, delim)
}

// argValues reads the command's positional file argument. Absent or "-"
// means stdin.
func argValues(c *cli.Command, delim string) ([]string, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		return readValues(os.Stdin, delim)
	}
	return fileValues(path, delim)
}

func argLines(c *cli.Command) ([]string, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		return readLines(os.Stdin)
	}
	return fileValues(path, "")
}
