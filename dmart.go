// Package dmart provides a Go client for the dmart content-management API.
//
// dmart is a data-mart backend that stores typed entries (content, users,
// folders, tickets, media and more) in spaces, addressed by space name,
// subpath, and shortname. This package exposes its managed API as typed
// method calls over JSON-over-HTTPS.
//
// # Quick Start
//
// Create a client, connect, and read the current profile:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    dmart "github.com/edraj/dmart-go"
//	)
//
//	func main() {
//	    client := dmart.NewClient("https://api.example.com", "alice", "secret")
//
//	    ctx := context.Background()
//	    if err := client.Connect(ctx); err != nil {
//	        log.Fatal(err)
//	    }
//	    defer client.Disconnect(ctx)
//
//	    profile, err := client.GetProfile(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("logged in as %s\n", profile.Records[0].Shortname)
//	}
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client := dmart.NewClient(url, username, password,
//	    dmart.WithTimeout(time.Minute),
//	    dmart.WithHTTPClient(customHTTPClient),
//	)
//
// # Sessions and Connections
//
// All clients share one process-wide pooled transport (see
// [SharedTransport]); creating many clients does not create many
// connection pools. Each client holds its own login state: [Client.Connect]
// acquires a bearer token, every operation attaches it, and
// [Client.Disconnect] invalidates it. Operations called without a token
// fail immediately without touching the network.
//
// # Error Handling
//
// Every failed call returns an [*APIError] carrying the HTTP status code
// and the backend's structured error payload:
//
//	resp, err := client.Query(ctx, req)
//	if err != nil {
//	    var apiErr *dmart.APIError
//	    if errors.As(err, &apiErr) {
//	        switch apiErr.Err.Type {
//	        case dmart.ErrTypeAuth:
//	            // Not logged in
//	        case dmart.ErrTypeTransport:
//	            // Could not reach the backend
//	        default:
//	            // Backend rejected the request; inspect apiErr.StatusCode
//	        }
//	    }
//	}
//
// Calls are never retried and failures are never swallowed: an operation
// either returns a typed [Response] or an error.
//
// # Thread Safety
//
// A [Client] is safe for concurrent use by multiple goroutines. Requests
// in flight at the moment of a [Client.Disconnect] are unaffected, but any
// operation started after the token is cleared fails with an
// authentication error.
//
// # API Version Compatibility
//
// This SDK targets dmart API [APIVersion]. Use [CompatibleAPIVersion] to
// check a deployed backend version against the supported range.
package dmart
