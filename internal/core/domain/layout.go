package domain

import "io/fs"

// File system layout and permissions shared across adapters.
const (
	// StateDirName is the directory holding meshsweep state next to the plan file.
	StateDirName = ".meshsweep"
	// RunStoreFileName is the run record store inside StateDirName.
	RunStoreFileName = "runs.json"

	// DirPerm is the permission for directories created by meshsweep.
	DirPerm fs.FileMode = 0o750
	// FilePerm is the permission for files created by meshsweep.
	FilePerm fs.FileMode = 0o644
	// PrivateFilePerm is the permission for files used in tests and fixtures.
	PrivateFilePerm fs.FileMode = 0o600
)
