// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"kclust/pkg/api"
)

// WriteText prints one TSV line per merge. Heights keep full float64
// precision; truncation is left to downstream consumers.
func WriteText(w io.Writer, res api.ResultV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "step\ta\tb\theight\tsize"); err != nil {
			return err
		}
	}
	for i, m := range res.Tree.Merges {
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%d\n",
			i, m.A, m.B, strconv.FormatFloat(m.Height, 'g', -1, 64), m.Size)
		if err != nil {
			return err
		}
	}
	return nil
}
