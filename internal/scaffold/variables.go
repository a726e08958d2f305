package scaffold

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/fred-labs/create-fred-app/internal/project"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/fred-labs/create-fred-app/internal/render"
)

// Template variable names.
const (
	VarProjectName       = "PROJECT_NAME"
	VarProvider          = "PROVIDER"
	VarModel             = "MODEL"
	VarProviderPackage   = "PROVIDER_PACKAGE"
	VarEnvVarName        = "ENV_VAR_NAME"
	VarAPIKeyPlaceholder = "API_KEY_PLACEHOLDER"
	VarFredVersion       = "FRED_VERSION"
)

// DefaultFredVersion is the framework version range written to package.json
// when none is configured.
const DefaultFredVersion = "^0.1.0"

// APIKeyPlaceholder stands in for the credential when none was supplied.
const APIKeyPlaceholder = "your-api-key-here"

// NewVariables derives the template variables for opts. fredVersion must be a
// valid semver constraint.
func NewVariables(opts project.Options, fredVersion string) (render.Variables, error) {
	if _, err := semver.NewConstraint(fredVersion); err != nil {
		return nil, fmt.Errorf("invalid fred version %q: %w", fredVersion, err)
	}

	desc := providers.Lookup(opts.Provider)
	key := APIKeyPlaceholder
	if opts.HasCredential() {
		key = opts.Credential
	}

	return render.Variables{
		VarProjectName:       opts.Name,
		VarProvider:          opts.Provider,
		VarModel:             opts.Model,
		VarProviderPackage:   desc.Package,
		VarEnvVarName:        desc.EnvVar,
		VarAPIKeyPlaceholder: key,
		VarFredVersion:       fredVersion,
	}, nil
}
