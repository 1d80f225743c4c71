package tokens

// Resolver maps semantic tokens to final colors through the palette.
type Resolver struct {
	palette    *Map
	table      SemanticTable
	errorColor string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithErrorColor overrides the color returned for unresolved tokens.
func WithErrorColor(color string) Option {
	return func(r *Resolver) {
		if color != "" {
			r.errorColor = color
		}
	}
}

// NewResolver builds a Resolver over the palette and semantic table.
func NewResolver(palette *Map, table SemanticTable, opts ...Option) *Resolver {
	r := &Resolver{
		palette:    palette,
		table:      table,
		errorColor: DefaultErrorColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorColor returns the color used for unresolved tokens.
func (r *Resolver) ErrorColor() string {
	return r.errorColor
}

// Resolve returns the final value of token in theme. Literals and the
// transparent keyword pass through as written; palette references are
// looked up. Anything unresolvable yields the error color.
func (r *Resolver) Resolve(theme Theme, token string) string {
	raw, ok := r.table.For(theme).Get(token)
	if !ok {
		return r.errorColor
	}

	switch Value(raw).Kind() {
	case KindLiteral, KindTransparent:
		return raw
	}

	color, ok := r.palette.Get(raw)
	if !ok {
		return r.errorColor
	}
	return color
}

// ResolveAll resolves every token of theme in table order.
func (r *Resolver) ResolveAll(theme Theme) *Map {
	out := NewMap()
	r.table.For(theme).Each(func(token, _ string) {
		out.Set(token, r.Resolve(theme, token))
	})
	return out
}
