package observability

// Metrics receives timing and cache events from the services and the
// HTTP layer. Implementations must be safe for concurrent use.
type Metrics interface {
	ObserveLookup(source string, cacheMs, dbMs float64)
	ObserveMutation(op string, dbMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, float64, float64)   {}
func (Noop) ObserveMutation(string, float64)          {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
