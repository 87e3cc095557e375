/*
Package domain contains the core models of the hop hinting engine.

It defines the alphabet labels are built from, the labels themselves, the opaque
selections they are attached to, and the Snapshot that carries the whole session
between two invocations. This package is kept pure and free of I/O, so every
transition can be replayed from its explicit inputs.

# Key Entities

  - Keyset: the ordered, duplicate-free alphabet. Lower index means easier to reach.
  - Label: the sequence of symbols a user types to pick one selection.
  - Selection: an opaque descriptor owned by the caller, echoed back verbatim.
  - HintPair: one live Selection with its remaining Label.
  - Snapshot: the full carry-over state (keyset, live pairs, original selections).
*/
package domain
