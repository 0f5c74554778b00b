// Package geomapfixture builds small, already-normalized geomap.Map
// values for the six reference scenarios, one constructor per file,
// mirroring the one-topology-per-file layout the reference pack's
// builder package used for its own synthetic-graph generators.
//
// Every constructor takes a testing.TB so it can fail the calling test
// immediately (via require.NoError) if Normalize ever rejects the
// fixture it built, rather than returning an error every call site
// would have to check.
package geomapfixture
