package recipe

import "go.trai.ch/zerr"

var (
	// ErrInvalidRecipe is returned when a recipe declaration is incomplete or inconsistent.
	ErrInvalidRecipe = zerr.New("invalid recipe")

	// ErrUnknownOption is returned when an option is not part of the option set.
	ErrUnknownOption = zerr.New("unknown option")

	// ErrInvalidOptionValue is returned when a value is not one of the option's allowed values.
	ErrInvalidOptionValue = zerr.New("invalid option value")

	// ErrMissingSetting is returned when a required settings axis has no value.
	ErrMissingSetting = zerr.New("missing setting")

	// ErrUnsupportedSetting is returned when a settings value or axis is not supported.
	ErrUnsupportedSetting = zerr.New("unsupported setting")

	// ErrDependencyNotFound is returned when a required package has not been built.
	ErrDependencyNotFound = zerr.New("dependency not found")
)

// Step kinds. Lifecycle failures match exactly one of these with errors.Is.
var (
	// ErrConfiguration covers option configuration, layout and generate failures.
	ErrConfiguration = zerr.New("configuration error")

	// ErrBuild covers configure-and-compile failures of the build tool.
	ErrBuild = zerr.New("build error")

	// ErrInstall covers failures of the install step.
	ErrInstall = zerr.New("install error")
)
