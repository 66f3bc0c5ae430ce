// Package job describes a least-squares fit declaratively and runs it.
//
// A job file is YAML or TOML; the format is picked from the extension
// (.yaml/.yml or .toml). Example:
//
//	name: sine
//	interval: {a: 0, b: 1}
//	basis:
//	  trigonometric: 3      # cos0, cos1, sin1, ..., cos3, sin3
//	  terms: ["exp:0.5"]    # appended after the families
//	target:
//	  samples: 100
//	  terms:
//	    - {term: "sin:2", weight: 1}
//	points:
//	  - {x: 0.5, y: 0.1}
//
// Basis sections are appended in the order polynomial, trigonometric,
// exponential, terms. The target is the weighted sum of its terms and is
// sampled with lsq.Session.AddFunction; points are added as they are.
package job
