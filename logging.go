package phamt

import "github.com/sirgallo/logger"

// cLog is the package-wide structured logger, following the same
// NewCustomLog("<component>") convention the rest of the sirgallo trie
// family uses.
var cLog = logger.NewCustomLog("phamt")
