package config

// ConfigFileName is the primary config file name.
const ConfigFileName = "typeasserts.yaml"

// ConfigFileNames are all recognized config file names, in lookup order.
var ConfigFileNames = []string{ConfigFileName, "typeasserts.yml"}

// DefaultPlugins are activated when no config file names any.
var DefaultPlugins = []string{"asserttype"}

// Analyzer and diagnostic naming
const (
	AnalyzerName       = "asserttype"
	DiagnosticCategory = "asserttype"
)

// Exit codes for the command line tool
const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitFailure     = 2
)
