/*
Package codec translates between the engine's snapshots and what the calling editor
reads and writes.

Selections travel as Kakoune selection descriptors (anchor_line.anchor_col,cursor_line.cursor_col),
kept as opaque strings unless strict parsing is requested. Three output formats exist:

  - text:  one "desc<TAB>head<TAB>tail" line per live hint, or a status line followed
    by one descriptor per line once the session is over.
  - json:  a Result document that can be fed back as the next call's input.
  - pairs: "line column label" lines, for callers that only deal in positions.
*/
package codec
