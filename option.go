package foamskip

type Option func(*options)

type options struct {
	newlineOK bool
}

func newOptions(opts []Option) options {
	o := options{
		newlineOK: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNewlineOK controls whether newlines are skipped like any other
// whitespace. It defaults to true.
func WithNewlineOK(ok bool) Option {
	return func(o *options) {
		o.newlineOK = ok
	}
}
