// Package main hosts the thumbwarm CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, sets up structured
// logging, and drives the preload pipeline against the Windows shell backend.
// It also carries configuration scaffolding commands and version reporting.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
