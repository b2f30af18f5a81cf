package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/dictionary"
)

var solveWords = []string{"hello", "early", "asset", "bound", "spice"}

func solve(t *testing.T, input string, opts solveOptions) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, runSolve(context.Background(), strings.NewReader(input), &out, solveWords, opts))
	return out.String()
}

func TestRunSolve_Patterns(t *testing.T) {
	out := solve(t, "bound bbbbb\nspice ybbby\n", solveOptions{width: 5, limit: 10})
	assert.Contains(t, out, "5 candidates:")
	assert.Contains(t, out, "3 candidates:")
	assert.Contains(t, out, "solved: asset")
}

func TestRunSolve_Practice(t *testing.T) {
	out := solve(t, "bound\nasset\n", solveOptions{width: 5, answer: "ASSET"})
	assert.Contains(t, out, "solved: asset (2 guesses)")
}

func TestRunSolve_BadInputKeepsGoing(t *testing.T) {
	out := solve(t, "crane\ncrane bbb\nhello bbbbq\nlist\nquit\n", solveOptions{width: 5, limit: 1})
	assert.Equal(t, 3, strings.Count(out, "error:"))
	assert.Contains(t, out, "… 4 more")
	assert.Contains(t, out, "hello early asset bound spice")
}

func TestRunSolve_AllGreenIsAWin(t *testing.T) {
	out := solve(t, "bound bbbbb\nasset ggggg\n", solveOptions{width: 5})
	assert.Contains(t, out, "solved: asset (2 guesses)")
	assert.NotContains(t, out, "no candidates left")
}

func TestRunSolve_NoCandidates(t *testing.T) {
	// hello is the only word with an h, and it was just guessed
	out := solve(t, "hello ybbbb\n", solveOptions{width: 5})
	assert.Contains(t, out, "no candidates left")
}

func TestRunSolve_EOF(t *testing.T) {
	out := solve(t, "", solveOptions{width: 5})
	assert.Contains(t, out, "5 candidates:")
}

func TestRunSolve_AnswerWrongWidth(t *testing.T) {
	err := runSolve(context.Background(), strings.NewReader(""), &bytes.Buffer{}, solveWords, solveOptions{width: 5, answer: "dog"})
	assert.Error(t, err)
}

func TestOpenSource(t *testing.T) {
	ctx := context.Background()

	src, closeSrc, err := openSource(ctx, config.Dictionary{Kind: config.DictionaryEmbedded})
	require.NoError(t, err)
	assert.IsType(t, &dictionary.Embedded{}, src)
	assert.NoError(t, closeSrc())

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))
	src, _, err = openSource(ctx, config.Dictionary{Kind: config.DictionaryFile, Path: path})
	require.NoError(t, err)
	assert.IsType(t, &dictionary.TextFile{}, src)

	src, closeSrc, err = openSource(ctx, config.Dictionary{Kind: config.DictionarySQLite, SQLitePath: filepath.Join(t.TempDir(), "w.db")})
	require.NoError(t, err)
	assert.IsType(t, &dictionary.SQLite{}, src)
	assert.NoError(t, closeSrc())

	_, closeSrc, err = openSource(ctx, config.Dictionary{Kind: "redis"})
	assert.Error(t, err)
	assert.NotNil(t, closeSrc)
}

func TestOpenStore(t *testing.T) {
	st, err := openStore(config.Store{Kind: config.StoreMemory})
	require.NoError(t, err)
	assert.NoError(t, st.Close())

	st, err = openStore(config.Store{Kind: config.StoreBadger, BadgerPath: filepath.Join(t.TempDir(), "sessions")})
	require.NoError(t, err)
	assert.NoError(t, st.Close())

	_, err = openStore(config.Store{Kind: "etcd"})
	assert.Error(t, err)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_FILE", "DICTIONARY_KIND", "SQLITE_PATH", "WORD_LENGTH", "LOG_LEVEL", "STORE_KIND", "AUTH_SECRET_HASH"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestWordsImportAndCount(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte("# mine\nhello\nearly\ndog\n"), 0o644))
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "words.db"))

	assert.Equal(t, "3\n", execute(t, "", "words", "import", list))

	t.Setenv("DICTIONARY_KIND", config.DictionarySQLite)
	assert.Equal(t, "2\n", execute(t, "", "words", "count"))
	assert.Equal(t, "1\n", execute(t, "", "words", "count", "--width", "3"))
	countWidth = 0
}

func TestWordsCount_Embedded(t *testing.T) {
	clearEnv(t)
	n, err := strconv.Atoi(strings.TrimSpace(execute(t, "", "words", "count")))
	require.NoError(t, err)
	assert.Greater(t, n, 100)
}

func TestHashSecret(t *testing.T) {
	clearEnv(t)
	out := execute(t, "s3cret\n", "hash-secret")
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
