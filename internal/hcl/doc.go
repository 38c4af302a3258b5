// Package hcl provides the HCL implementation of config.Loader. It parses
// build manifests, evaluates their expressions against the environment and
// translates the decoded blocks into the format-agnostic config.Model.
package hcl
