// Package markers locates named sections inside a text document.
//
// A section is a run of lines enclosed by a start marker line and an end
// marker line that both carry the section name. Sections never nest and a
// name appears at most once per document. The literal marker shape is
// described by a Syntax; the default is the label form used by WP Starter
// templates:
//
//	AUTOLOAD: {
//	    require __DIR__ . '/vendor/autoload.php';
//	} #@@/AUTOLOAD
//
// Parse is a single pass over the lines and keeps no state between calls,
// so parsing the same text always yields the same Layout.
package markers
