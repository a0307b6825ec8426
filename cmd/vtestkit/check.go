package main

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/testkit/internal/errors"
	"github.com/vango-dev/testkit/internal/metrics"
	"github.com/vango-dev/testkit/pkg/proptypes"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		contractPath string
		propsPath    string
		component    string
		metricsOut   string
		failFast     bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate props against a prop contract",
		Long: `Validate a YAML or JSON props file against a prop contract file.

A contract file names the component and declares each prop:

  component: Counter
  props:
    count:   {type: number, required: true}
    variant: {type: oneOf, values: [primary, secondary]}

Examples:
  vtestkit check --contract counter.yaml --props counter.props.yaml
  vtestkit check --contract counter.yaml --props - --fail-fast
  vtestkit check --contract counter.yaml --props p.yaml --metrics-out props.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ff := a.cfg.Check.FailFast
			if cmd.Flags().Changed("fail-fast") {
				ff = failFast
			}
			return a.runCheck(contractPath, propsPath, component, ff, metricsOut)
		},
	}

	cmd.Flags().StringVarP(&contractPath, "contract", "c", "", "Prop contract file (required)")
	cmd.Flags().StringVarP(&propsPath, "props", "p", "", "Props file, or - for stdin (default: no props)")
	cmd.Flags().StringVar(&component, "component", "", "Component label (default: the contract's component)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Report only the first violation")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile")
	_ = cmd.MarkFlagRequired("contract")

	return cmd
}

func (a *app) runCheck(contractPath, propsPath, component string, failFast bool, metricsOut string) error {
	contract, err := a.loadContract(contractPath)
	if err != nil {
		return err
	}
	if component == "" {
		component = contract.DisplayName()
	}

	props := proptypes.Props{}
	if propsPath != "" {
		if props, err = a.loadProps(propsPath); err != nil {
			return err
		}
	}
	a.log.Debug("checking props", "component", component, "declared", len(contract.Spec), "supplied", len(props), "fail_fast", failFast)

	start := time.Now()
	checkErr := proptypes.CheckWith(contract.Spec, props, proptypes.CheckOptions{
		Component: component,
		FailFast:  failFast,
	})
	elapsed := time.Since(start)

	rec := metrics.New(metrics.WithNamespace(a.cfg.Metrics.Namespace))
	result, violations := metrics.ResultPass, 0
	var ve *proptypes.ViolationError
	switch {
	case checkErr == nil:
	case stderrors.As(checkErr, &ve):
		result, violations = metrics.ResultFail, len(ve.Violations)
	default:
		result = metrics.ResultError
	}
	rec.ObserveCheck(component, result, violations, elapsed)
	if err := a.writeMetrics(rec, metricsOut); err != nil {
		return err
	}

	if ve == nil && checkErr != nil {
		return checkErr
	}
	if err := a.printer.Check(component, checkErr); err != nil {
		return err
	}
	if ve != nil {
		return errors.New("E020").
			WithDetail(fmt.Sprintf("%s has %d prop contract violation(s).", component, violations)).
			Wrap(proptypes.ErrConformance)
	}
	return nil
}

func (a *app) loadContract(path string) (*proptypes.Contract, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, errors.New("E030").Wrap(err)
	}
	defer f.Close()

	c, err := proptypes.Decode(f)
	if err != nil {
		return nil, withDecodeLocation(err, path)
	}
	a.log.Debug("contract decoded", "file", path, "component", c.Component, "props", len(c.Spec))
	return c, nil
}

func (a *app) loadProps(path string) (proptypes.Props, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, errors.New("E030").Wrap(err)
	}
	defer f.Close()

	props, err := proptypes.DecodeProps(f)
	if err != nil {
		return nil, withDecodeLocation(err, path)
	}
	return props, nil
}

// withDecodeLocation points a decode error at the offending line of path.
func withDecodeLocation(err error, path string) error {
	ke, ok := errors.As(err)
	if !ok || path == "-" {
		return err
	}
	var de *proptypes.DecodeError
	if stderrors.As(err, &de) {
		ke.WithLocation(path, de.Line, 0)
	}
	return ke
}
