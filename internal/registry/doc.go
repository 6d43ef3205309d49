// Package registry provides the explicit configuration-builder context that
// maps record names to parameter sets.
//
// Records are registered once under a unique name, either directly, by
// cloning an existing record, or by deriving one (clone then override).
// During application startup, the registry is populated from the loaded
// catalogs and the compiled-in modules, validated, and then sealed: every
// record is frozen and further registrations fail. A sealed registry is safe
// to share with any number of readers.
package registry
