package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/testkit/internal/errors"
	"github.com/vango-dev/testkit/internal/metrics"
	"github.com/vango-dev/testkit/pkg/htmlparse"
	"github.com/vango-dev/testkit/pkg/vquery"
)

func (a *app) locateCmd() *cobra.Command {
	var (
		expect     int
		metricsOut string
	)

	cmd := &cobra.Command{
		Use:   "locate <file> <id>",
		Short: "Find nodes by test identifier in rendered HTML",
		Long: `Parse an HTML file (or - for stdin) and print every element whose
data-test attribute equals <id>, in document order.

Examples:
  vtestkit locate page.html submit-button
  vtestkit locate page.html todo-item --expect 3
  curl -s localhost:3000 | vtestkit locate - nav-link`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var want *int
			if cmd.Flags().Changed("expect") {
				want = &expect
			}
			return a.runLocate(args[0], args[1], want, metricsOut)
		},
	}

	cmd.Flags().IntVarP(&expect, "expect", "n", 0, "Fail unless exactly this many nodes match")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile")

	return cmd
}

func (a *app) runLocate(path, id string, expect *int, metricsOut string) (err error) {
	rec := metrics.New(metrics.WithNamespace(a.cfg.Metrics.Namespace))
	matches := 0
	mismatch := false
	defer func() {
		result := metrics.ResultPass
		switch {
		case mismatch:
			result = metrics.ResultFail
		case err != nil:
			result = metrics.ResultError
		}
		rec.ObserveLocate(result, matches)
		if werr := a.writeMetrics(rec, metricsOut); werr != nil && err == nil {
			err = werr
		}
	}()

	f, err := openInput(path)
	if err != nil {
		return errors.New("E030").Wrap(err)
	}
	defer f.Close()

	tree, err := htmlparse.Parse(f)
	if err != nil {
		return err
	}
	a.log.Debug("parsed html", "file", path, "roots", len(tree.Children))

	sel, err := vquery.Find(tree, id)
	if err != nil {
		return err
	}
	matches = sel.Len()
	a.log.Debug("located nodes", "id", id, "matches", matches)

	if err := a.printer.Locate(id, sel); err != nil {
		return err
	}

	if expect != nil && matches != *expect {
		mismatch = true
		return errors.New("E021").
			WithDetail(fmt.Sprintf("Expected %d node(s) with data-test=%q but found %d.", *expect, id, matches))
	}
	return nil
}

func (a *app) writeMetrics(rec *metrics.Recorder, path string) error {
	if path == "" {
		return nil
	}
	if err := rec.WriteTextfile(path); err != nil {
		return err
	}
	a.log.Debug("metrics written", "path", path)
	return nil
}
