package parser

import "fmt"

// ResultRecord is one simulation outcome as written by the upstream generator.
// Fields the generator adds beyond these three (e.g. "n") are ignored.
type ResultRecord struct {
	M           int     `json:"m"`
	Pe          float64 `json:"pe"`
	SuccessRate float64 `json:"successRate"`
}

// Dataset holds the records in file order. Many records share the same M.
type Dataset []ResultRecord

// MissingInputError reports that the results file does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %q not found; run experiments.js first to generate the simulation results", e.Path)
}
