package mapper

import (
	"log/slog"

	"github.com/ecgraph/ecrdf/metric"
)

// RelationshipConvention selects the default supertype assigned to a
// relationship class without a declared base. The source model has two
// incompatible conventions; both are supported and the choice is explicit.
type RelationshipConvention int

const (
	// ConventionSingle defaults every baseless relationship class to
	// ec:RelationshipClass.
	ConventionSingle RelationshipConvention = iota

	// ConventionSplit defaults to ec:LinkTableRelationshipClass or
	// ec:NavigationRelationshipClass depending on the custom-attribute
	// marker on the inheritance chain.
	ConventionSplit
)

type options struct {
	logger     *slog.Logger
	metrics    *metric.Metrics
	convention RelationshipConvention
	dedupe     bool
}

// Option configures a mapper.
type Option func(*options)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithConvention selects the relationship supertype convention.
func WithConvention(c RelationshipConvention) Option {
	return func(o *options) { o.convention = c }
}

// WithDedupe makes the schema mapper track emitted class and property RDF
// names and suppress re-declaration. Off by default: the traversal contract
// guarantees one call per class, and this mapper relies on that guarantee
// unless the flag is set.
func WithDedupe() Option {
	return func(o *options) { o.dedupe = true }
}

func buildOptions(opts []Option) options {
	o := options{
		logger:     slog.Default(),
		convention: ConventionSingle,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
