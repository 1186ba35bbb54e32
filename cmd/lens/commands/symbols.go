package commands

import (
	"os"

	"github.com/cockroachdb/errors"
	lens "github.com/lens-format/lens-go"
	"github.com/lens-format/lens-go/types"
	"github.com/urfave/cli/v3"
)

func symbolFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "symbols",
			Aliases: []string{"s"},
			Usage:   "path to a JSON array with the symbol table, in order",
		},
		&cli.StringSliceFlag{
			Name:  "symbol",
			Usage: "append a single symbol to the table; repeatable",
		},
	}
}

// loadSymbols gathers the symbol table from the --symbols file and
// any --symbol flags, in that order.
func loadSymbols(cmd *cli.Command) ([]string, error) {
	var syms []string

	if path := cmd.String("symbols"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		v, err := lens.FromJSON(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing symbols file %s", path)
		}

		arr, ok := v.(types.ArrayValue)
		if !ok {
			return nil, errors.Errorf("symbols file %s must contain a JSON array of strings", path)
		}

		for _, e := range arr {
			if e.Type() != types.TypeText {
				return nil, errors.Errorf("symbols file %s contains a non-string entry %s", path, e)
			}
			syms = append(syms, types.AsString(e))
		}
	}

	return append(syms, cmd.StringSlice("symbol")...), nil
}
