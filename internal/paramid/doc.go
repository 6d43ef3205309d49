// internal/paramid/doc.go

/*
Package paramid provides a structured representation of parameter paths
inside a parameter set.

A path is a dot-separated sequence of parameter names, each naming a
parameter of the record reached so far, e.g. `vertexCuts.distVal2dMin`.
The last segment may carry an element index for vector parameters, e.g.
`trackSelection.weights[2]`.

Parsing and formatting live here so that the record model, the loaders and
the renderers agree on a single canonical spelling.
*/
package paramid
