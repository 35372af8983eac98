// Package bundle ships the default weather dataset inside the binary.
package bundle

import (
	"embed"
	"io/fs"
)

//go:embed weatherdata.csv
var files embed.FS

// FS returns the bundled data files. The default dataset is "weatherdata.csv".
func FS() fs.FS {
	return files
}
