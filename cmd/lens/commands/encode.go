package commands

import (
	"context"

	lens "github.com/lens-format/lens-go"
	"github.com/lens-format/lens-go/types"
	"github.com/urfave/cli/v3"
)

// NewEncodeCommand returns a cli.Command for "lens encode".
func NewEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode a JSON document into a Lens payload.",
		UsageText: `lens encode [options] file.json`,
		Description: `The encode command reads a JSON document and writes the
equivalent Lens payload. Reading from standard input:

$ echo '{"id": 7}' | lens encode --symbol id -o payload.lens

Object keys must all be present in the symbol table:

$ lens encode -s symbols.json doc.json > payload.lens`,
		Flags: append(symbolFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "name of the file to write to. Defaults to STDOUT.",
			},
			&cli.BoolFlag{
				Name:  "timestamps",
				Usage: "parse date-like strings as timestamps.",
			},
		),
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		syms, err := loadSymbols(cmd)
		if err != nil {
			return err
		}

		data, err := readInput(cmd.Args().First())
		if err != nil {
			return err
		}

		var v types.Value
		if cmd.Bool("timestamps") {
			v, err = lens.FromJSONWithTimestamps(data)
		} else {
			v, err = lens.FromJSON(data)
		}
		if err != nil {
			return err
		}

		out, err := lens.Encode(v, syms)
		if err != nil {
			return err
		}

		return writeOutput(cmd.String("output"), out)
	}

	return &cmd
}
