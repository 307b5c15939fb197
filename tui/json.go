package tui

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder sonic.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := sonic.ConfigStd.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderMembers renders the member list as JSON.
func (p *JSONPresenter) RenderMembers(members []*MemberView) error {
	if members == nil {
		members = []*MemberView{}
	}
	return p.encoder.Encode(members)
}

// RenderVersions renders a member's versions as JSON.
func (p *JSONPresenter) RenderVersions(member *MemberView, versions []*VersionView) error {
	if versions == nil {
		versions = []*VersionView{}
	}
	output := struct {
		Member   *MemberView    `json:"member"`
		Versions []*VersionView `json:"versions"`
	}{
		Member:   member,
		Versions: versions,
	}
	return p.encoder.Encode(output)
}

// RenderImport renders an import result as JSON.
func (p *JSONPresenter) RenderImport(result *ImportView) error {
	return p.encoder.Encode(result)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderRun renders a run result as JSON.
func (p *JSONPresenter) RenderRun(run *RunView) error {
	return p.encoder.Encode(run)
}

// RenderStep renders one playback step as JSON.
func (p *JSONPresenter) RenderStep(step *StepView) error {
	return p.encoder.Encode(step)
}

// RenderDiff renders a version diff as JSON.
func (p *JSONPresenter) RenderDiff(diff *DiffView) error {
	return p.encoder.Encode(diff)
}

// RenderStatus renders the tool status as JSON.
func (p *JSONPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderError renders an error message as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONPresenter implements Presenter
var _ Presenter = (*JSONPresenter)(nil)
