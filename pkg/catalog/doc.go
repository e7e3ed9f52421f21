// Package catalog provides a client for the MyAnimeList anime catalog API.
//
// The client resolves free-text anime names into catalog metadata: the
// numeric catalog ID, the canonical display title, and the genre list.
// All requests authenticate with a MyAnimeList client ID sent as the
// X-MAL-CLIENT-ID header.
//
// # Result semantics
//
// Lookups distinguish two failure modes. A response that arrives but does
// not carry the expected data (empty result set, missing fields, non-2xx
// status) is a valid "no result" outcome and is reported via the boolean
// return, not an error. Only transport-level faults (connection errors,
// timeouts) surface as errors, wrapped with [ErrNetwork].
//
// # Example
//
//	client := catalog.NewClient(catalog.Config{ClientID: os.Getenv("MAL_CLIENT_ID")})
//	id, ok, err := client.LookupID(ctx, "Cowboy Bebop")
//	if err != nil {
//	    // network failure
//	}
//	if !ok {
//	    // nothing matched
//	}
package catalog
