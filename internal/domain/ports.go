package domain

// ConfigLoader loads the dashboard configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (DashboardConfig, error)
}

// Navigator is the router collaborator. The shell reads the current path from
// it and forwards link activations to it without validating them.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// RepoLocator finds the root of the repository enclosing a path.
type RepoLocator interface {
	RepoRoot(path string) (string, error)
}
