package assembler

import (
	"errors"
	"log/slog"

	"github.com/maxshaw/assembler/qb"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
	KindCall
)

var keywords = [...]string{
	KindNone:   "",
	KindSelect: "SELECT",
	KindInsert: "INSERT INTO",
	KindUpdate: "UPDATE",
	KindDelete: "DELETE",
	KindCall:   "CALL",
}

func (k Kind) String() string {
	if int(k) < len(keywords) && k != KindNone {
		return keywords[k]
	}
	return "NONE"
}

const (
	wildcard  = "*"
	separator = ";"
)

type whereEntry struct {
	cond  string
	key   string
	bound bool
}

// Builder assembles one SQL statement. It is not safe for concurrent use.
type Builder struct {
	mode     Mode
	logger   *slog.Logger
	numbered bool

	kind Kind

	table       string
	deleteTable []string

	fields []string
	joins  []string
	where  []whereEntry
	binds  *qb.Map
	in     []string

	order, group string

	params *qb.Map
	prefix string

	errs []error
}

type Option func(b *Builder)

func WithMode(m Mode) Option {
	return func(b *Builder) {
		b.mode = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithNumberedPlaceholders makes Exec and Query rewrite :name into $1, $2... instead of ?.
func WithNumberedPlaceholders() Option {
	return func(b *Builder) {
		b.numbered = true
	}
}

func WithPrefix(prefix string) Option {
	return func(b *Builder) {
		b.prefix = prefix
	}
}

func New(opts ...Option) *Builder {
	b := (&Builder{mode: Prepared, logger: slog.Default()}).reset()
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ExecuteMode switches to literal rendering: values are written into the SQL text.
//
// SECURITY: literal output is not escaped and is open to injection.
func (b *Builder) ExecuteMode() *Builder {
	b.mode = Literal
	return b
}

// PreparedMode switches to :name placeholders, values go to BindParams.
func (b *Builder) PreparedMode() *Builder {
	b.mode = Prepared
	return b
}

func (b *Builder) Mode() Mode {
	return b.mode
}

func (b *Builder) Kind() Kind {
	return b.kind
}

// Clear resets the builder to its empty state. The mode and the options given to New
// other than the prefix are kept.
func (b *Builder) Clear() *Builder {
	return b.reset()
}

// Err reports every input rejected since the last Clear.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

func (b *Builder) reset() *Builder {
	b.kind = KindNone

	b.table = ""
	b.deleteTable = []string{}

	b.fields = []string{}
	b.joins = []string{}
	b.where = []whereEntry{}
	b.binds = nil
	b.in = []string{}

	b.order = ""
	b.group = ""

	b.params = qb.NewMap()
	b.prefix = ""

	b.errs = nil

	return b
}

func (b *Builder) fail(op, input string, err error) *Builder {
	b.errs = append(b.errs, &BuildError{Op: op, Input: input, Err: err})
	return b
}

func (b *Builder) bind(key string, val any) {
	if b.binds == nil {
		b.binds = qb.NewMap()
	}
	b.binds.Set(key, val)
}
