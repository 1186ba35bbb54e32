package commands

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	lens "github.com/lens-format/lens-go"
	"github.com/lens-format/lens-go/types"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// NewVerifyCommand returns a cli.Command for "lens verify".
func NewVerifyCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "verify",
		Usage:     "Check that payload files decode and round-trip cleanly.",
		UsageText: `lens verify [options] payload.lens...`,
		Description: `The verify command decodes every given payload, re-encodes
the result and decodes it again, then checks both value trees for
equality. Files are processed concurrently:

$ lens verify -s symbols.json corpus/*.lens
verified 128 payloads`,
		Flags: append(symbolFlags(),
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

		paths := cmd.Args().Slice()
		if len(paths) == 0 {
			return errors.New(cmd.UsageText)
		}

		var opts []lens.DecoderOption
		if cmd.Bool("strict") {
			opts = append(opts, lens.WithStrict())
		}

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))

		for _, path := range paths {
			path := path
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := verifyFile(path, syms, opts); err != nil {
					return errors.Wrap(err, path)
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "verified %d payloads\n", len(paths))
		return nil
	}

	return &cmd
}

func verifyFile(path string, syms []string, opts []lens.DecoderOption) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	v, err := lens.Decode(data, syms, opts...)
	if err != nil {
		return err
	}

	reencoded, err := lens.Encode(v, syms)
	if err != nil {
		return err
	}

	again, err := lens.Decode(reencoded, syms, opts...)
	if err != nil {
		return errors.Wrap(err, "re-encoded payload")
	}

	if !types.Equal(v, again) {
		return errors.New("value changed across a round-trip")
	}

	return nil
}
