package checks

// blockPairs maps each block-opening keyword to the closer it requires.
// Built once at process start and never mutated, so analysis runs can share
// it without coordination.
var blockPairs = map[string]string{
	"function": "end",
	"do":       "end",
	"then":     "end",
	"repeat":   "until",
}

// blockClosers is the set of keywords that terminate a block.
var blockClosers = map[string]bool{
	"end":   true,
	"until": true,
}
