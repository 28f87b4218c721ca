// Package file reads and writes the files flobnar keeps on local disk.
//
// Adapters:
//   - ConfigStore: settings in ~/.flobnar/config.toml
//   - ProgramSource: program and test documents by path, or stdin for "-"
package file
