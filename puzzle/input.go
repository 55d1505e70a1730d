package puzzle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// InputPath returns the conventional input file for day inside dir: dir/dayN.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// ReadLines reads every line of the file at path.
// A trailing '\r' is stripped from each line and trailing blank lines are dropped,
// so editors that append an empty final line do not produce a phantom record.
// Errors wrap ErrInput.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInput, path, err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// Tokens splits line on sep and removes every whitespace rune inside each token.
// Tokens left empty are kept, not skipped: "1,2,3," yields four tokens, the last
// one empty, so Ints rejects it instead of silently reading three values.
// An empty line yields a single empty token, mirroring strings.Split.
func Tokens(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i, p := range parts {
		parts[i] = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, p)
	}

	return parts
}

// Ints splits line on sep and decodes each token as a signed decimal int64.
// The first token that fails to decode yields an error wrapping ErrToken.
func Ints(line, sep string) ([]int64, error) {
	toks := Tokens(line, sep)
	out := make([]int64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrToken, i, tok)
		}
		out[i] = v
	}

	return out, nil
}
