// Package config parses the CLI surface: required and optional flags
// via the standard flag package, plus a hand-rolled
// `key = value` INI reader for --preset files in the hMetis/KaHyPar
// preset shape. No CLI or INI library appears anywhere in the
// retrieval pack; see DESIGN.md for the stdlib justification.
package config
