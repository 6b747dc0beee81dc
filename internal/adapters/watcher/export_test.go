package watcher

var DedupeRoots = dedupeRoots
