// Package source loads a frequency table from a single location.
//
// A location is a local file path, "-" for standard input, or an http(s)
// URL. Every load is exactly one attempt: network failures and bad status
// codes are reported to the caller, never retried.
//
//	table, err := source.Load(ctx, "https://example.com/img_data.json")
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // ...
//	}
package source
