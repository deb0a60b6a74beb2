package dataset

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var embeddedData embed.FS

// defaultData returns the embedded default datasets rooted at the
// collection file names.
func defaultData() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
