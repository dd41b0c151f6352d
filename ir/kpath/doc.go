// Package kpath builds and parses the dotted key paths used to address
// leaves in a locale document.
//
// A path names one field per level, joined with dots:
//
//	menu.file.save
//
// Field names containing a dot, a quote or whitespace are single
// quoted in the text form, so 'a.b'.c is the field "a.b" followed by
// the field "c". Quoting is canonical: Join and JoinAll always produce
// the same text for the same segments, and SplitAll inverts them.
package kpath
