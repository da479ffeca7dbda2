package buildsys

// Configurable prepares a build graph from the generated build inputs.
type Configurable interface {
	Configure(args ...string) error
}

// Buildable executes a configured build graph.
type Buildable interface {
	Build(args ...string) error
}

// Installable installs build outputs into the package directory.
type Installable interface {
	Install(args ...string) error
}

// Generator writes one build-system input file, such as a toolchain or a
// dependency file.
//
//go:generate mockgen -source=buildsys.go -destination=mocks/mock_buildsys.go -package=mocks
type Generator interface {
	Generate() error
}

// BuildSystem captures shared capabilities of build helpers (CMake, etc).
// It keeps the common lifecycle and env setup; implementations add their own extras.
type BuildSystem interface {
	Configurable
	Buildable
	Installable

	// Basic paths.
	Source(dir string)
	InstallDir(dir string)

	// Environment helper.
	Env(key, val string)

	// Where artifacts land.
	OutputDir() string
}
