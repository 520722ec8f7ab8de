package service

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renjuashokan/Dependencies/internal/domain"
)

func TestPropsService_Render(t *testing.T) {
	svc := NewPropsService()

	t.Run("Should render all four version fields and the copyright line", func(t *testing.T) {
		version := &domain.Version{Full: "1.11.0-rc1", Numeric: "1.11.0"}

		content, err := svc.Render(version, 2026, "Renju Ashokan")

		require.NoError(t, err)
		assert.Contains(t, content, "<VersionPrefix>1.11.0-rc1</VersionPrefix>")
		assert.Contains(t, content, "<AssemblyVersion>1.11.0.0</AssemblyVersion>")
		assert.Contains(t, content, "<FileVersion>1.11.0.0</FileVersion>")
		assert.Contains(t, content, "<InformationalVersion>1.11.0-rc1</InformationalVersion>")
		assert.Contains(t, content, "<Copyright>Copyright © 2026 Renju Ashokan</Copyright>")
	})

	t.Run("Should keep pre-release suffixes out of assembly and file versions", func(t *testing.T) {
		version := &domain.Version{Full: "2.0.0-beta.2", Numeric: "2.0.0"}

		content, err := svc.Render(version, 2026, "Renju Ashokan")

		require.NoError(t, err)
		assert.Contains(t, content, "<AssemblyVersion>2.0.0.0</AssemblyVersion>")
		assert.Contains(t, content, "<FileVersion>2.0.0.0</FileVersion>")
		assert.NotContains(t, content, "<AssemblyVersion>2.0.0-beta.2")
	})

	t.Run("Should trim whitespace around the copyright holder", func(t *testing.T) {
		version := domain.Default()

		content, err := svc.Render(version, 2026, "  Acme Corp  ")

		require.NoError(t, err)
		assert.Contains(t, content, "<Copyright>Copyright © 2026 Acme Corp</Copyright>")
	})
}

func TestPropsService_Write(t *testing.T) {
	svc := NewPropsService()

	t.Run("Should write the props file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		version := &domain.Version{Full: "1.11.0", Numeric: "1.11.0"}

		err := svc.Write(fs, "version.props", version, 2026, "Renju Ashokan")

		require.NoError(t, err)
		content, err := afero.ReadFile(fs, "version.props")
		require.NoError(t, err)
		assert.Contains(t, string(content), "<VersionPrefix>1.11.0</VersionPrefix>")
	})

	t.Run("Should replace prior content instead of merging", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "version.props", []byte("<Project><Old/></Project>"), 0o644))
		version := &domain.Version{Full: "1.12.0", Numeric: "1.12.0"}

		err := svc.Write(fs, "version.props", version, 2026, "Renju Ashokan")

		require.NoError(t, err)
		content, err := afero.ReadFile(fs, "version.props")
		require.NoError(t, err)
		assert.NotContains(t, string(content), "<Old/>")
		assert.Contains(t, string(content), "<VersionPrefix>1.12.0</VersionPrefix>")
	})

	t.Run("Should create missing parent directories", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		version := domain.Default()

		err := svc.Write(fs, "build/props/version.props", version, 2026, "Renju Ashokan")

		require.NoError(t, err)
		exists, err := afero.Exists(fs, "build/props/version.props")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
