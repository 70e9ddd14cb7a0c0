package report

import (
	"encoding/json"
	"io"

	"github.com/alexiusacademia/goslab/internal/slab"
)

// JSON writes the full result as indented JSON.
func JSON(w io.Writer, res *slab.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
