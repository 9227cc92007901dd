// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"kclust/pkg/api"
)

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteResultJSON writes the tree+layout document (pretty-indented).
func WriteResultJSON(w io.Writer, res api.ResultV1) error {
	return encodePretty(w, res)
}

// WriteCountsJSON writes the per-sample counts document (pretty-indented).
func WriteCountsJSON(w io.Writer, c api.CountsV1) error {
	return encodePretty(w, c)
}
