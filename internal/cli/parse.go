package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tcfw/uriref/internal/config"
	"github.com/tcfw/uriref/internal/utils/logging"
	"github.com/tcfw/uriref/pkg/uri"
)

var (
	parseCmd = &cobra.Command{
		Use:   "parse [uri ...]",
		Short: "Parse URIs into their components",
		Long:  "Parse each argument as a URI or relative reference and print its components. With no arguments, references are read from stdin, one per line.",
		RunE:  runParse,
	}
)

func init() {
	parseCmd.Flags().StringP("format", "o", "", "output format: text, json or msgpack")
	viper.BindPFlag("output", parseCmd.Flags().Lookup("format"))
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	render, err := renderer(cfg.Output())
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "reading references from stdin")
		}
	}

	cmd.SilenceUsage = true

	var failed bool
	u := &uri.URI{}
	for _, in := range inputs {
		if err := u.Parse(in); err != nil {
			logging.WithError(err).WithField("uri", in).Error("failed to parse reference")
			failed = true
			continue
		}

		out, err := render(u.Parts())
		if err != nil {
			return errors.Wrap(err, "rendering components")
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if failed {
		return errors.New("one or more references failed to parse")
	}

	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
