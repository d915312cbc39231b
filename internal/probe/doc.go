// Package probe composes the TOC reader and track classifier into the
// single-pass structural scan platter exists to perform.
//
// One pass issues strictly sequential transactions against one drive handle:
// the TOC queries first, then one probe-sector read per data track. The pass
// is all-or-nothing; any transport failure discards whatever was gathered and
// surfaces the error, so consumers never see a truncated report.
package probe
