// Package hmetis implements the hMetis-compatible file formats: the
// input hypergraph format, the output partition file, the fixed-vertex
// file, and the informational result filename
// convention. Parsing follows a buffered-scanner line-oriented reader
// idiom, one field extraction per line rather than a generic tokenizer.
package hmetis
