// Package io reads alignment data and display filters from JSON.
//
// # Data Format
//
// Alignment data uses the layout of the interactive viewer. Chromosomes
// live below "karyo", features and links are keyed by id, and the tree is
// optional:
//
//	{
//	  "karyo": {
//	    "chromosomes": {
//	      "c1": {"genome_id": 0, "length": 2000, "seq": null},
//	      "c2": {"genome_id": 1, "length": 1000, "seq": null}
//	    }
//	  },
//	  "features": {
//	    "f1": {"karyo": "c1", "start": 100, "end": 600},
//	    "f2": {"karyo": "c2", "start": 600, "end": 100}
//	  },
//	  "links": {
//	    "l1": {"source": "f1", "target": "f2", "identity": 90}
//	  },
//	  "tree": {"children": [{"name": "0"}, {"name": "1"}]}
//	}
//
// [ReadData] and [ImportData] validate that every link and feature refers
// to something that exists.
//
// # Filters
//
// Filters are stored as the JSON form of [filter.Filters]. When a run has
// no filter file, [DefaultFilters] derives one that shows everything in
// data ordered by id.
//
// [filter.Filters]: github.com/matzehuels/synteny/pkg/filter.Filters
package io
