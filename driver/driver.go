/*
Driver Module - Wires stdin -> Parser -> Factoring Engine -> stdout
=====================================================================

Run is the single entry point the CLI layer (cmd/exptwig) calls. It reads
one run's worth of characters from stdin (until the parser reaches Complete
or Error, per SPEC_FULL §4.2), hands the finished trees to a factoring
Engine, and writes substitutions followed by the final dump to stdout.
Diagnostics go to a caller-supplied Logger, matching SPEC_FULL §6's stderr
contract.
*/

package driver

import (
	"context"
	"io"

	"exptwig/factor"
	"exptwig/internal/alloc"
	"exptwig/internal/diagnostics"
	"exptwig/parser"
	"exptwig/treenode"
)

// Run reads an expression stream from stdin, factors it, and writes the
// result to stdout. It returns a non-nil error (and logs a diagnostic) on
// any parse error, mapping to a non-zero exit code per SPEC_FULL §6.
func Run(ctx context.Context, stdin io.Reader, stdout io.Writer, log *diagnostics.Logger, budget *alloc.Budget) error {
	p := parser.New(budget)

	trees, err := parseWithContext(ctx, p, stdin)
	if err != nil {
		log.Errorf("ExpParser", "%v", err)
		return err
	}

	engine := factor.New(trees, budget)
	if err := engine.Simplify(stdout); err != nil {
		log.Errorf("Factor", "%v", err)
		// Fall through to the final dump per SPEC_FULL §7: a
		// factoring-phase error still gets to report whatever state
		// the engine holds.
	}

	factor.Dump(stdout, p.Assembly(), p.OperatorStack(), p.OperandStack(), engine.Trees)
	return nil
}

// parseWithContext runs p.Parse on its own goroutine so a cancelled ctx can
// be observed promptly by the caller. The parser itself has no internal
// concurrency or suspension points (SPEC_FULL §5); this only bounds how
// long Run waits on a blocking stdin read.
func parseWithContext(ctx context.Context, p *parser.Parser, stdin io.Reader) ([]*treenode.Node, error) {
	type result struct {
		trees []*treenode.Node
		err   error
	}
	done := make(chan result, 1)
	go func() {
		trees, err := p.Parse(stdin)
		done <- result{trees, err}
	}()

	select {
	case r := <-done:
		return r.trees, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
