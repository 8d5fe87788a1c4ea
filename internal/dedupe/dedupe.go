// Package dedupe provides the shared singleflight group used to collapse
// concurrent catalog reload requests: only one reload reads and re-derives
// the config file while other callers wait for its result.
package dedupe

import "golang.org/x/sync/singleflight"

// ReloadGroup deduplicates catalog reloads keyed by config path.
var ReloadGroup singleflight.Group
