package commands

import (
	"context"

	"github.com/cockroachdb/errors"
	lens "github.com/lens-format/lens-go"
	"github.com/urfave/cli/v3"
)

// NewDecodeCommand returns a cli.Command for "lens decode".
func NewDecodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode a Lens payload into JSON or CBOR.",
		UsageText: `lens decode [options] payload.lens`,
		Description: `The decode command reads a Lens payload and writes it back
out in a readable interchange format:

$ lens decode -s symbols.json payload.lens
{"id": 7, "name": "x"}

CBOR output keeps binary payloads intact:

$ lens decode -s symbols.json --format cbor -o doc.cbor payload.lens`,
		Flags: append(symbolFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "name of the file to write to. Defaults to STDOUT.",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "json",
				Usage: "output format, json or cbor.",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail when bytes remain after the first value.",
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

		var opts []lens.DecoderOption
		if cmd.Bool("strict") {
			opts = append(opts, lens.WithStrict())
		}

		v, err := lens.Decode(data, syms, opts...)
		if err != nil {
			return err
		}

		var out []byte
		switch cmd.String("format") {
		case "json":
			out, err = v.MarshalJSON()
			out = append(out, '\n')
		case "cbor":
			out, err = marshalCBOR(v)
		default:
			return errors.Errorf("unknown output format %q", cmd.String("format"))
		}
		if err != nil {
			return err
		}

		return writeOutput(cmd.String("output"), out)
	}

	return &cmd
}
