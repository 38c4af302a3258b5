// Package app contains the core application logic. It wires the manifest
// loader, registries and emitters into one generation run, decoupled from
// any specific entrypoint like a CLI.
package app
