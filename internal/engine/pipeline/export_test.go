package pipeline

var InNamespace = inNamespace
