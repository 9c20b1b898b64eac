package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/foamskip"
)

type diagnoser interface {
	Diagnostic() string
}

type rootFlags struct {
	pos       int
	newlineOK bool
	strict    bool
	verbose   bool
}

func newRootCmd(fs afero.Fs, stdout io.Writer, log *logrus.Logger) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:     AppName + " FILE...",
		Short:   "Print the offset of the first byte after whitespace and comments",
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			var failed int
			for _, file := range args {
				if err := run(fs, stdout, log, file, flags); err != nil {
					failed++
					var d diagnoser
					if errors.As(err, &d) {
						log.WithField("file", file).Error(d.Diagnostic())
					} else {
						log.WithField("file", file).Error(err)
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&flags.pos, "pos", 0, "offset to start skipping from")
	cmd.Flags().BoolVar(&flags.newlineOK, "newline-ok", true, "skip newlines like any other whitespace")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "require that only whitespace and comments follow")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(fs afero.Fs, stdout io.Writer, log *logrus.Logger, file string, flags rootFlags) error {
	contents, err := afero.ReadFile(fs, file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	entry := log.WithFields(logrus.Fields{
		"file": file,
		"pos":  flags.pos,
		"size": len(contents),
	})
	entry.Debug("skipping")

	opt := foamskip.WithNewlineOK(flags.newlineOK)
	if flags.strict {
		if err := foamskip.ExpectEnd(contents, flags.pos, opt); err != nil {
			return err
		}
	}

	next, err := foamskip.Skip(contents, flags.pos, opt)
	if err != nil {
		return err
	}

	line, col := foamskip.Location(contents, next)
	entry.WithField("next", next).Debug("skipped")
	_, err = fmt.Fprintf(stdout, "%s:%d:%d:%d\n", file, next, line, col)
	return err
}
