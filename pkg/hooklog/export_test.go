package hooklog

// ResetInstalled clears the process-wide logger and the level hint so
// install tests can run in one binary.
func ResetInstalled() {
	installed.Store(nil)
	maxLevel.Store(int32(LevelOff))
}

// PackagePath exposes packagePath to external tests.
var PackagePath = packagePath
