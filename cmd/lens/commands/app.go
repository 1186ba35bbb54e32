package commands

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// NewApp creates the lens CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "lens",
		Usage: "Inspect, produce and verify Lens-encoded payloads",
		Commands: []*cli.Command{
			NewEncodeCommand(),
			NewDecodeCommand(),
			NewVerifyCommand(),
		},
	}
}

// readInput reads the file named by the first argument, or standard
// input when the argument is missing or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes data to the file named by the flag, or standard
// output when the flag is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
