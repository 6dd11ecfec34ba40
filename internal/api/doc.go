// Package api exposes the prime query operations over HTTP.
//
// All endpoints are GET and return an output.Result as JSON. A query with
// no answer (a composite number, previous-prime of 2, an unparseable
// argument) responds 200 with found=false: absence is a result, not an
// error. When the server is configured with an API key, /v1 routes require
// a matching X-API-Key header.
package api
