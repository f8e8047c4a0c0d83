// Package layout infers a document's heading structure from positioned,
// font-annotated text fragments.
//
// The pipeline has four stages, each independently configurable:
//
//   - [LineGrouper] merges fragments sharing a page and vertical position
//     into logical lines.
//   - [SizeAnalyzer] discovers the body-text size and clusters near-equal
//     font sizes into discrete hierarchy levels ([Hierarchy]).
//   - [BodyTextHeuristic] rejects lines that read as prose despite using a
//     large font.
//   - [HeaderClassifier] composes the three into deduplicated, page-ordered
//     heading records.
//
// The analysis needs a global view of the font-size distribution before any
// local decision, so classification is a synchronous two-phase pass over a
// fully buffered fragment slice.
package layout
