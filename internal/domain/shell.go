package domain

// ShellInstallResult reports what the integration installer did.
type ShellInstallResult struct {
	Shell            string
	RCPath           string
	IntegrationPath  string
	AlreadyInstalled bool
}
