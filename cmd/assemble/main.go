package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/maxshaw/assembler"
	"github.com/maxshaw/assembler/internal/plan"
)

func main() {
	var (
		planPath = flag.String("plan", "", "YAML query plan")
		driver   = flag.String("driver", "sqlite3", "database driver: sqlite3, mysql or postgres")
		dsn      = flag.String("dsn", "", "execute the statement against this data source")
		verbose  = flag.Bool("v", false, "log executed statements")
	)
	flag.Parse()

	if *planPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*planPath, *driver, *dsn, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(planPath, driver, dsn string, verbose bool) error {
	p, err := plan.Load(planPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := []assembler.Option{
		assembler.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	}
	if driver == "postgres" {
		opts = append(opts, assembler.WithNumberedPlaceholders())
	}

	b := assembler.New(opts...)
	if err := p.Apply(b); err != nil {
		return err
	}

	sq, err := b.ToSQL()
	if err != nil {
		return err
	}

	fmt.Println(sq)
	if b.Mode() == assembler.Prepared {
		for _, pair := range b.BindParams().Pairs() {
			fmt.Printf("  :%s = %s\n", pair.Key, pair.Val.Literal())
		}
	}

	if dsn == "" {
		return nil
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	if b.Kind() != assembler.KindSelect {
		res, err := b.Exec(ctx, db)
		if err != nil {
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		fmt.Printf("%d row(s) affected\n", affected)
		return nil
	}

	rows, err := b.Query(ctx, db)
	if err != nil {
		return err
	}
	defer rows.Close()

	return printRows(rows)
}

func printRows(rows *sql.Rows) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}

		if err := rows.Scan(scan...); err != nil {
			return err
		}

		for i, column := range columns {
			if i > 0 {
				fmt.Print("\t")
			}
			fmt.Printf("%s=%v", column, printable(values[i]))
		}
		fmt.Println()
	}

	return rows.Err()
}

func printable(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
