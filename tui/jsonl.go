package tui

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONLPresenter renders output as newline-delimited JSON.
type JSONLPresenter struct {
	w       io.Writer
	encoder sonic.Encoder
}

// NewJSONLPresenter creates a new JSONL presenter.
func NewJSONLPresenter(opts PresenterOptions) *JSONLPresenter {
	// No indentation for JSONL
	return &JSONLPresenter{
		w:       opts.Writer,
		encoder: sonic.ConfigStd.NewEncoder(opts.Writer),
	}
}

// RenderMembers renders members as JSONL (one per line).
func (p *JSONLPresenter) RenderMembers(members []*MemberView) error {
	for _, m := range members {
		if err := p.encoder.Encode(m); err != nil {
			return err
		}
	}
	return nil
}

// RenderVersions renders the member followed by its versions, one per line.
func (p *JSONLPresenter) RenderVersions(member *MemberView, versions []*VersionView) error {
	if err := p.encoder.Encode(member); err != nil {
		return err
	}
	for _, v := range versions {
		if err := p.encoder.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// RenderImport renders an import result as JSONL.
func (p *JSONLPresenter) RenderImport(result *ImportView) error {
	return p.encoder.Encode(result)
}

// RenderConfig renders the configuration as JSONL.
func (p *JSONLPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderRun renders a run result as JSONL.
func (p *JSONLPresenter) RenderRun(run *RunView) error {
	return p.encoder.Encode(run)
}

// RenderStep renders one playback step as JSONL.
func (p *JSONLPresenter) RenderStep(step *StepView) error {
	return p.encoder.Encode(step)
}

// RenderDiff renders a version diff as JSONL.
func (p *JSONLPresenter) RenderDiff(diff *DiffView) error {
	return p.encoder.Encode(diff)
}

// RenderStatus renders the tool status as JSONL.
func (p *JSONLPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderError renders an error message as JSONL.
func (p *JSONLPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSONL.
func (p *JSONLPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONLPresenter implements Presenter
var _ Presenter = (*JSONLPresenter)(nil)
