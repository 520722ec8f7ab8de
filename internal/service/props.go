package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/afero"

	"github.com/renjuashokan/Dependencies/internal/domain"
)

// propsTemplate is the shared MSBuild property group imported by every
// project in the build. The file is regenerated wholesale on every run.
const propsTemplate = `<Project>
  <PropertyGroup>
    <VersionPrefix>{{ .Version.Full }}</VersionPrefix>
    <AssemblyVersion>{{ .Version.AssemblyVersion }}</AssemblyVersion>
    <FileVersion>{{ .Version.AssemblyVersion }}</FileVersion>
    <InformationalVersion>{{ .Version.Full }}</InformationalVersion>
    <Copyright>Copyright © {{ .Year }} {{ .Holder | trim }}</Copyright>
  </PropertyGroup>
</Project>
`

// PropsService renders and persists the shared version property file.
type PropsService interface {
	Render(version *domain.Version, year int, holder string) (string, error)
	Write(fs afero.Fs, path string, version *domain.Version, year int, holder string) error
}

type propsService struct {
	tpl *template.Template
}

// NewPropsService creates a PropsService with the sprig function map, the
// same template setup the rest of the tooling uses.
func NewPropsService() PropsService {
	tpl := template.Must(template.New("version.props").Funcs(sprig.FuncMap()).Parse(propsTemplate))
	return &propsService{tpl: tpl}
}

func (s *propsService) Render(version *domain.Version, year int, holder string) (string, error) {
	var buf bytes.Buffer
	data := map[string]any{
		"Version": version,
		"Year":    year,
		"Holder":  holder,
	}
	if err := s.tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render version properties: %w", err)
	}
	return buf.String(), nil
}

// Write renders the property file and replaces any previous content at path.
func (s *propsService) Write(fs afero.Fs, path string, version *domain.Version, year int, holder string) error {
	content, err := s.Render(version, year, holder)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
