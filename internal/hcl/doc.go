// Package hcl provides the concrete HCL implementation of the catalog
// loading interface defined in the `config` package. It is responsible for
// file discovery, parsing, and translating `record` and `derive` blocks into
// the format-agnostic model.
//
// A record declares every parameter with a typed constructor:
//
//	record "SecondaryVertexProducer" "secondaryVertexTagInfos" {
//	  extSVDeltaRToJet = double(0.3)
//	  extSVCollection  = input_tag("secondaryVertices")
//	  weights          = vdouble(1, 0.5)
//	  debugLabel       = untracked(string("sv"))
//	  vertexCuts {
//	    multiplicityMin = uint32(2)
//	  }
//	}
//
// A derivation clones a base record and overrides values. Values may be
// plain literals, which take the declared kind, or typed constructors, whose
// kind must match the declaration:
//
//	derive "negativeTagInfos" {
//	  from = "secondaryVertexTagInfos"
//	  set {
//	    extSVDeltaRToJet = double(-0.4)
//	    vertexCuts {
//	      distVal2dMin = -2.5
//	    }
//	  }
//	  override "weights[1]" {
//	    value = 0.25
//	  }
//	}
package hcl
