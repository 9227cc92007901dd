// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"kclust/internal/output"
	"kclust/pkg/api"
)

// Options carries per-format rendering knobs.
type Options struct {
	Header bool   // text: include the header line
	Title  string // svg: caption
}

// ResultWriters is the format → handler registry for the clustering result.
var ResultWriters = map[string]func(w io.Writer, res api.ResultV1, o Options) error{
	"json": func(w io.Writer, res api.ResultV1, _ Options) error {
		return output.WriteResultJSON(w, res)
	},
	"text": func(w io.Writer, res api.ResultV1, o Options) error {
		return output.WriteText(w, res, o.Header)
	},
	"svg": func(w io.Writer, res api.ResultV1, o Options) error {
		return output.WriteSVG(w, res.Layout, o.Title)
	},
}

// WriteResult dispatches to the registered handler for format.
func WriteResult(format string, w io.Writer, res api.ResultV1, o Options) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, res, o)
}
