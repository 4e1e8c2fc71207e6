// Package data bundles the sample catalog shipped with the binary, used
// whenever no catalog path is configured.
package data

import _ "embed"

//go:embed sample_kdramas.csv
var SampleCatalog []byte
