// Package schema composes the JSON Schemas used for validating a project
// manifest document. The fixed core specification (top-level layout plus the
// project table) is combined with tool sub-schemas contributed by plugins
// into a single schema graph with referential integrity.
//
// # Registry
//
// NewRegistry loads the core resources, mounts the project table under
// properties.project, mounts each plugin's schema under tool.<name>, and
// registers the composed root last. Since the registry maps each fragment's
// `$id` to the fragment itself, every composable schema MUST carry a
// top-level `$id`, unique across the registry, and must agree with the
// registry's `$schema` dialect when it declares one:
//
//	reg, err := schema.NewRegistry([]schema.ToolPlugin{
//	    schema.Descriptor{Name: "mytool", Schema: toolSchema},
//	}, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	main := reg.Main()
//
// # Reference resolution
//
// RefHandler intercepts `$ref` lookups so every reference resolves against
// the registry rather than the network. `$ref` values must match a registry
// key exactly, regardless of URI form.
//
// # Error Handling
//
// Registration failures are typed and abort construction:
//   - MissingIDError: fragment has no `$id`
//   - InvalidSchemaVersionError: fragment declares a different dialect
//   - DuplicateIDError: two fragments share an `$id`
package schema
