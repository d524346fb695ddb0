package castellano

import "embed"

// builtinData holds the vocabulary and conjugation files shipped with the
// package. A data directory passed to New overrides them file by file.
//
//go:embed data/*.txt
var builtinData embed.FS
