// Package pipeline fans sample FASTA records out to a counting worker pool
// and folds the partial key→count maps back into one Counts per sample.
//
// Workers own private maps; the fold is plain integer addition, so the
// merged result is identical for any worker count or scheduling order.
package pipeline
