package search

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/twilight-dream-of-magic/neoalzette-arxsearch/arxop"
)

// CheckpointRecord is one strictly-improving incumbent, as handed to
// Checkpoint.Write by a running search.
type CheckpointRecord struct {
	RunID        uuid.UUID
	Reason       string
	Rounds       int
	Trail        Trail
	NodesVisited int64
	Elapsed      time.Duration
}

// Checkpoint writes one plain-text block per strictly improving
// incumbent to a caller-supplied io.Writer: labelled key=value lines
// followed by one R<i> line per trail step. Blocks are separated by a
// blank line. A Checkpoint only ever appends blocks whose weight
// improves on the last one it wrote; it never rewrites or truncates.
type Checkpoint struct {
	w        io.Writer
	wrote    bool
	best     arxop.Weight
	writeErr error
}

// NewCheckpoint wraps w as a monotonic-improving checkpoint sink. A nil
// w makes Write a no-op.
func NewCheckpoint(w io.Writer) *Checkpoint {
	return &Checkpoint{w: w, best: noIncumbentWeight}
}

// Write appends rec as a new block if its weight strictly improves on
// the last block written (or if this is the first block), and reports
// the first error encountered across the Checkpoint's lifetime.
func (c *Checkpoint) Write(rec CheckpointRecord) error {
	if c == nil || c.w == nil {
		return nil
	}
	if c.wrote && rec.Trail.TotalWeight >= c.best {
		return nil
	}

	var buf []byte
	buf = appendLine(buf, "run_id", rec.RunID.String())
	buf = appendLine(buf, "timestamp_local", time.Now().Format(time.RFC3339))
	buf = appendLine(buf, "reason", rec.Reason)
	buf = appendLine(buf, "rounds", fmt.Sprintf("%d", rec.Rounds))

	var startA, startB uint32
	if len(rec.Trail.Steps) > 0 {
		startA, startB = rec.Trail.Steps[0].InA, rec.Trail.Steps[0].InB
	}
	buf = appendLine(buf, "start_delta_a", fmt.Sprintf("%#08x", startA))
	buf = appendLine(buf, "start_delta_b", fmt.Sprintf("%#08x", startB))
	buf = appendLine(buf, "best_weight", fmt.Sprintf("%d", rec.Trail.TotalWeight))
	buf = appendLine(buf, "nodes_visited", fmt.Sprintf("%d", rec.NodesVisited))
	buf = appendLine(buf, "elapsed_sec", fmt.Sprintf("%.6f", rec.Elapsed.Seconds()))
	buf = appendLine(buf, "trail_steps", fmt.Sprintf("%d", len(rec.Trail.Steps)))
	for _, step := range rec.Trail.Steps {
		buf = append(buf, fmt.Sprintf("R%d weight=%d in_a=%#08x in_b=%#08x out_a=%#08x out_b=%#08x\n",
			step.RoundIndex, step.Weight, step.InA, step.InB, step.OutA, step.OutB)...)
	}
	buf = append(buf, '\n')

	if _, err := c.w.Write(buf); err != nil && c.writeErr == nil {
		c.writeErr = err
	}
	c.wrote = true
	c.best = rec.Trail.TotalWeight
	return c.writeErr
}

func appendLine(buf []byte, key, value string) []byte {
	buf = append(buf, key...)
	buf = append(buf, '=')
	buf = append(buf, value...)
	buf = append(buf, '\n')
	return buf
}
