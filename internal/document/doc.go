// Package document reads manifest files from disk. TOML is the primary
// format; YAML and JSON renditions of the same structure are accepted for
// tooling that generates manifests. Parsing stops at well-formedness - schema
// validation is the validator package's job.
package document
