package assembler

// column applies the column prefix to a params key.
func (b *Builder) column(key string) string {
	return b.prefix + key
}
