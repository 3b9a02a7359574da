package assembler

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/maxshaw/assembler/internal/named"
)

// Executor runs rendered statements. *sql.DB, *sql.Tx and *sql.Conn satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Statement returns what an executor runs: the literal SQL as is, or, in prepared mode,
// the SQL with :name rewritten into driver placeholders and the positional arguments.
func (b *Builder) Statement() (string, []any, error) {
	sq, err := b.ToSQL()
	if err != nil {
		return "", nil, err
	}

	if b.mode == Literal {
		return sq, nil, nil
	}

	return named.Prepare(sq, b.BindParams(), b.numbered)
}

func (b *Builder) Exec(ctx context.Context, ex Executor) (sql.Result, error) {
	sq, args, err := b.Statement()
	if err != nil {
		return nil, err
	}

	run := b.logRun(ctx, "exec", sq, args)

	res, err := ex.ExecContext(ctx, sq, args...)
	if err != nil {
		b.logger.ErrorContext(ctx, "[SQL] exec failed", "run", run, "error", err)
		return nil, err
	}
	return res, nil
}

func (b *Builder) Query(ctx context.Context, ex Executor) (*sql.Rows, error) {
	sq, args, err := b.Statement()
	if err != nil {
		return nil, err
	}

	run := b.logRun(ctx, "query", sq, args)

	rows, err := ex.QueryContext(ctx, sq, args...)
	if err != nil {
		b.logger.ErrorContext(ctx, "[SQL] query failed", "run", run, "error", err)
		return nil, err
	}
	return rows, nil
}

// Debug logs the rendered statement, the bind values and err when given.
func (b *Builder) Debug(err error) {
	sq, renderErr := b.ToSQL()

	attrs := []any{
		"mode", b.mode.String(),
		"statement", sq,
		"binds", b.BindParams().ToMap(),
	}
	if renderErr != nil {
		attrs = append(attrs, "render_error", renderErr)
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}

	b.logger.Info("[SQL] debug", attrs...)
}

func (b *Builder) logRun(ctx context.Context, op, sq string, args []any) string {
	run := uuid.NewString()
	b.logger.DebugContext(ctx, "[SQL] "+op,
		"run", run,
		"mode", b.mode.String(),
		"statement", sq,
		"args", args,
	)
	return run
}
