package tui

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLPresenter renders output as YAML.
type YAMLPresenter struct {
	w io.Writer
}

// NewYAMLPresenter creates a new YAML presenter.
func NewYAMLPresenter(opts PresenterOptions) *YAMLPresenter {
	return &YAMLPresenter{w: opts.Writer}
}

func (p *YAMLPresenter) encode(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderOrders renders a list of orders as YAML.
func (p *YAMLPresenter) RenderOrders(orders []*OrderView) error {
	return p.encode(orders)
}

// RenderOrder renders a single order as YAML.
func (p *YAMLPresenter) RenderOrder(order *OrderView) error {
	return p.encode(order)
}

// RenderInvocations renders the invocation audit trail as YAML.
func (p *YAMLPresenter) RenderInvocations(invocations []*InvocationView) error {
	return p.encode(invocations)
}

// RenderConfig renders the configuration as YAML.
func (p *YAMLPresenter) RenderConfig(config *ConfigView) error {
	return p.encode(config)
}

// RenderStatus renders the tool status as YAML.
func (p *YAMLPresenter) RenderStatus(status *StatusView) error {
	return p.encode(status)
}

// RenderError renders an error message as YAML.
func (p *YAMLPresenter) RenderError(err error) error {
	output := struct {
		Error string `yaml:"error"`
	}{
		Error: err.Error(),
	}
	return p.encode(output)
}

// RenderMessage renders a simple message as YAML.
func (p *YAMLPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `yaml:"message"`
	}{
		Message: message,
	}
	return p.encode(output)
}

// Ensure YAMLPresenter implements Presenter
var _ Presenter = (*YAMLPresenter)(nil)
