// Package slipo provides a Go client for the SLIPO API.
//
// SLIPO is a toolkit for integrating points of interest (POI) datasets:
// transforming them to RDF, interlinking, fusing, and enriching them,
// and exporting the results. This package provides typed, idiomatic Go
// access to the SLIPO Workbench REST API: the resource catalog, the
// remote user file system, workflow management, and the toolkit
// operations.
//
// # Quick Start
//
// Create a client with an application key (generated in the SLIPO
// Workbench) and query the resource catalog:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/slipo-eu/slipo-go"
//	)
//
//	func main() {
//	    client, err := slipo.NewClient("my-api-key")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := client.CatalogQuery(context.Background(), slipo.QueryOptions{Term: "osm"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, r := range result.Items {
//	        fmt.Printf("%d.%d %s\n", r.ID, r.Version, r.Name)
//	    }
//	}
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client, err := slipo.NewClient("my-api-key",
//	    slipo.WithBaseURL("https://app.example.org/"),
//	    slipo.WithTimeout(2*time.Minute),
//	    slipo.WithLogger(logger),
//	)
//
// The base URL must use https. A plain http URL is accepted only with
// [WithInsecureBaseURL], which logs a warning: the API key is sent with
// every request and an unsecured connection exposes it.
//
// # Toolkit Inputs
//
// The interlink, fuse, enrich, and export operations consume datasets
// from three kinds of sources, expressed as [Input] values:
//
//	slipo.FileInput("datasets/osm.nt")  // remote user file system
//	slipo.CatalogInput(42, 1)           // catalog resource id and revision
//	slipo.OutputInput(10, 3, 7)         // workflow output file
//
// # Error Handling
//
// Every failure is reported as an [Error] carrying a code, a message,
// and the HTTP status when one was received:
//
//	_, err := client.ProcessStatus(ctx, 10, 3)
//	if err != nil {
//	    var apiErr *slipo.Error
//	    if errors.As(err, &apiErr) && apiErr.Code == slipo.CodeAPI {
//	        // the server rejected the request; apiErr.Message explains why
//	    }
//	}
//
// # Concurrency
//
// Each method issues one synchronous, blocking request. The [Client] is
// safe for concurrent use by multiple goroutines; callers wanting
// parallel requests or timeouts supply their own orchestration through
// goroutines and context deadlines.
package slipo
