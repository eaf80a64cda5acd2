// Package main hosts the recpub CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into workflow
// runs: the root command performs the full locate, download, and publish
// sequence, while subcommands cover listing recordings, inspecting the upload
// ledger, and configuration scaffolding. It centralizes configuration
// resolution and logger setup so subcommands can focus on user experience
// instead of wiring.
package main
