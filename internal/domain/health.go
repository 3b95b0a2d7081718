package domain

// Upstream names one HTTP backend the edge forwards to.
type Upstream struct {
	Name string
	URL  string
}

// UpstreamHealth is the result of probing one upstream.
type UpstreamHealth struct {
	Name           string
	URL            string
	HTTPStatus     int
	ResponseTimeMs int64
	Healthy        bool
	Error          string
}

// UpstreamsReady reports whether every probed upstream is healthy.
func UpstreamsReady(results map[string]*UpstreamHealth) bool {
	for _, h := range results {
		if h == nil || !h.Healthy {
			return false
		}
	}
	return true
}
