package proptypes

import "github.com/vango-dev/testkit/internal/errors"

// Declarer is implemented by components that carry their own prop contract.
type Declarer interface {
	PropTypes() Spec
	DisplayName() string
}

// Contract is a named prop contract, usually decoded from a file.
type Contract struct {
	Component string
	Spec      Spec
}

// PropTypes implements Declarer.
func (c *Contract) PropTypes() Spec {
	if c == nil {
		return nil
	}
	return c.Spec
}

// DisplayName implements Declarer.
func (c *Contract) DisplayName() string {
	if c == nil {
		return ""
	}
	return c.Component
}

// CheckDeclarer checks props against d's own contract and name.
// A nil Declarer is reported the same way as a nil Spec.
func CheckDeclarer(d Declarer, props Props, opts CheckOptions) error {
	if d == nil {
		return errors.New("E002").Wrap(ErrNoSpec)
	}
	if opts.Component == "" {
		opts.Component = d.DisplayName()
	}
	return CheckWith(d.PropTypes(), props, opts)
}
