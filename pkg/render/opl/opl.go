// Package opl exports pages as constraint models for IBM ILOG CPLEX.
//
// Two models are available:
//
//   - [Absolute] declares position and size variables for every box and
//     states every layout and structural constraint. The objective keeps
//     boxes close to their generated geometry.
//   - [Relative] only declares the delta variables of a closure-reduced
//     [fault.Model]. Every property is written as its generated value plus
//     the deltas that may shift it, and only the constraints in the repair
//     closure are stated. The objective minimizes the total absolute delta.
//
// Both models are plain OPL source meant to be fed to oplrun.
//
// [fault.Model]: github.com/matzehuels/pagen/pkg/fault#Model
package opl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/pagen/pkg/page"
)

// Stats describes the size of an exported model.
type Stats struct {
	Variables   int `json:"variables"`
	Constraints int `json:"constraints"`
}

func writeHeader(buf *bytes.Buffer, pg *page.Page, extra ...string) {
	buf.WriteString("/*********************************************\n")
	buf.WriteString(" * OPL 12.10.0.0 Model\n")
	fmt.Fprintf(buf, " * Run: %s\n", pg.ID)
	fmt.Fprintf(buf, " * Seed: %d\n", pg.Seed)
	fmt.Fprintf(buf, " * Tree size: %d\n", pg.Tree.Size(pg.Root))
	fmt.Fprintf(buf, " * Tree depth: %d\n", pg.Tree.Depth(pg.Root))
	for _, line := range extra {
		fmt.Fprintf(buf, " * %s\n", line)
	}
	buf.WriteString(" *********************************************/\n")
}

func intSet(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
