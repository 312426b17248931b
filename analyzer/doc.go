// Package analyzer computes the Flesch-Kincaid grade level score for each
// play in a text corpus, concurrently, by fanning the corpus out over a
// pool of active objects and harvesting the scores in order.
//
// The corpus is a title→content mapping, typically loaded from a folder of
// .txt files with LoadCorpus. Each play is first stripped of non-essential
// portions (act and scene headers, stage directions, line numbers, speaker
// names) so the readability computation sees only spoken lines.
package analyzer
