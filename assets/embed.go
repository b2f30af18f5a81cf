// assets/embed.go
//
// Word list compiled into the binary so the solver runs without any
// dictionary configured. One word per line; "#" lines are comments.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordList is the name of the embedded list inside FS.
const WordList = "words.txt"

// OpenWordList opens the embedded list for reading.
func OpenWordList() (fs.File, error) {
	return FS.Open(WordList)
}
