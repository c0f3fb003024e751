// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package metrics defines the Prometheus collectors exported by Animerec.

Collectors are registered on the default registry through promauto and served
by promhttp at the configured metrics path (default /metrics):

	curl http://localhost:5000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Recommendations:
  - recommend_requests_total{outcome}: success, invalid_request, error
  - recommend_returned_items: histogram of result sizes
  - recommend_filtered_items_total: sampled titles dropped as already known
  - recommend_catalog_titles: catalog size, set by the stats reporter
  - search_requests_total

Build:
  - animerec_build_info{version}

The endpoint label is the chi route pattern, not the raw path, to keep
cardinality bounded.
*/
package metrics
