package handlers

import "testing"

// saveAndRestoreFactories snapshots the package-level factory
// variables and restores them when the test finishes, so tests can
// freely inject fakes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origLoadConfigFile := loadConfigFile
	origFindConfigFile := findConfigFile
	origNewProvisioner := newProvisioner
	origStdout := stdout
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteConfig := writeConfig
	origRequireRoot := requireRoot
	origCheckAllTools := checkAllTools
	origStatFile := statFile
	origCommandOutput := commandOutput

	t.Cleanup(func() {
		loadConfigFile = origLoadConfigFile
		findConfigFile = origFindConfigFile
		newProvisioner = origNewProvisioner
		stdout = origStdout
		fileExists = origFileExists
		runWizard = origRunWizard
		writeConfig = origWriteConfig
		requireRoot = origRequireRoot
		checkAllTools = origCheckAllTools
		statFile = origStatFile
		commandOutput = origCommandOutput
	})
}
