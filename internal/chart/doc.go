// Package chart implements the embodied carbon bar chart: an immutable
// dataset, a two-dimensional category/status filter, the pure projection
// used for rendering and the CSV export of the unfiltered data.
//
// Filtering never touches the dataset. Export always reflects every record,
// whatever the current selection.
package chart
