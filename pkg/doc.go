// Package pkg provides the core libraries for anime dataset exploration.
//
// # Overview
//
// The pkg directory is organized into a handful of focused areas:
//
//  1. [catalog] - MyAnimeList API client (name → id/title/genres lookups)
//  2. [dataset] - CSV datasets, frequency tables, correlation matrices
//  3. [chart] - Chart figure descriptions and the SVG/PNG sinks
//  4. [errors] - Structured error codes shared by the CLI and the API
//  5. [observability] - Optional hooks for metrics and tracing backends
//
// # Architecture
//
// The typical data flow:
//
//	CSV file
//	    ↓
//	dataset.Dataset  ──→  chart.Figure  ──→  sink (SVG / PNG bytes)
//
// Catalog lookups are independent of the dataset flow: the [catalog] client
// resolves free-text names against the MyAnimeList API and reports missing
// entries as an absent result rather than an error.
package pkg
