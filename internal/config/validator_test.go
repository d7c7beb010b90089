package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantFields []string
	}{
		{name: "defaults are valid", cfg: *DefaultConfig()},
		{name: "pnpm is valid", cfg: Config{PackageManager: "pnpm", InstallDir: "ui"}},
		{name: "unknown package manager", cfg: Config{PackageManager: "maven", InstallDir: "ui"}, wantFields: []string{"packageManager"}},
		{name: "absolute install dir", cfg: Config{PackageManager: "npm", InstallDir: "/etc"}, wantFields: []string{"installDir"}},
		{name: "escaping install dir", cfg: Config{PackageManager: "npm", InstallDir: "src/../../x"}, wantFields: []string{"installDir"}},
		{name: "both invalid", cfg: Config{PackageManager: "", InstallDir: ""}, wantFields: []string{"packageManager", "installDir"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateInstallDir(t *testing.T) {
	tests := []struct {
		dir     string
		wantErr bool
	}{
		{"src/components/blockui", false},
		{"./ui", false},
		{"ui/../widgets", false},
		{"", true},
		{"   ", true},
		{".", true},
		{"..", true},
		{"../sibling", true},
		{"/abs", true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			err := ValidateInstallDir(tt.dir)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidPackageManagers(t *testing.T) {
	pms := ValidPackageManagers()
	assert.Equal(t, []string{"npm", "pnpm", "yarn", "bun"}, pms)

	pms[0] = "mutated"
	assert.Equal(t, "npm", ValidPackageManagers()[0])
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	msg := ValidationErrors{{Field: "installDir", Message: "must not be empty"}}.Error()
	assert.Contains(t, msg, "installDir: must not be empty")
}
