package model

// Scope carries the authenticated identity through use-case calls.
// A zero Scope means "not authenticated".
type Scope struct {
	UserID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
