package config

// Merge overlays src onto dst and returns the result. Fields set in src win;
// zero-value src fields fall through to dst. Neither argument is modified.
//
// Callers layer it as Merge(Merge(global, local), flags).
func Merge(dst, src *Config) *Config {
	result := &Config{}
	if dst != nil {
		*result = *dst
	}
	if src == nil {
		return result
	}

	if src.Model != "" {
		result.Model = src.Model
	}
	if src.SearchContextSize != "" {
		result.SearchContextSize = src.SearchContextSize
	}
	if src.MaxRetries != nil {
		n := *src.MaxRetries
		result.MaxRetries = &n
	}
	if src.RequestTimeout != 0 {
		result.RequestTimeout = src.RequestTimeout
	}
	if src.URLCitationsOnly != nil {
		b := *src.URLCitationsOnly
		result.URLCitationsOnly = &b
	}
	if src.HTTPAddr != "" {
		result.HTTPAddr = src.HTTPAddr
	}
	return result
}
