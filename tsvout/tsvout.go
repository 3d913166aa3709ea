// Package tsvout is the positional TSV output collaborator: given an
// iterable of road nodes, it emits one line per node, `<lat>\t<lon>`,
// separated by the host platform's newline. It is a pure formatter, not
// part of the core's correctness contract (spec.md §6).
package tsvout

import (
	"bufio"
	"fmt"
	"io"
	"runtime"

	"github.com/routeweaver/pathcore/road"
)

// newline is the host platform's line separator.
var newline = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Write emits one TSV line per node in nodes to w, in iteration order.
func Write(w io.Writer, nodes []road.Node) error {
	bw := bufio.NewWriter(w)
	for _, n := range nodes {
		if _, err := fmt.Fprintf(bw, "%g\t%g%s", n.Lat, n.Lon, newline); err != nil {
			return err
		}
	}
	return bw.Flush()
}
