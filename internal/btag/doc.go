// Package btag holds the b-tagging tag-info records.
//
// The secondary vertex tag-info producers are declared in an HCL catalog
// compiled into the binary. On top of them, the package derives
// inclusiveSecondaryVertexFinderFilteredNegativeTagInfos: a clone of
// inclusiveSecondaryVertexFinderFilteredTagInfos whose vertex selection is
// mirrored to negative flight distances and jet-axis separations. It selects
// vertices on the wrong side of the primary vertex, a control sample used to
// estimate the mistag rate of light-flavour jets.
package btag
