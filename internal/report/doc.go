// Package report defines the structured document a probe pass produces and
// its JSON and table renderings.
//
// The JSON shape is a stable contract with the surrounding archival
// orchestration: fixed keys in a fixed order, with data_type omitted for
// audio tracks and for data tracks whose submode could not be recognized.
package report
