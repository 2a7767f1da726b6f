package levels

import "embed"

// FS holds a small LDtk project the viewer opens when no project is given.
//
//go:embed sample
var FS embed.FS

// SampleProject is the project path inside FS.
const SampleProject = "sample/sample.ldtk"
