package castellano

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Data file names, relative to the data directory.
const (
	adjectivesFile   = "adjectives.txt"
	nounsFile        = "nouns.txt"
	progressiveFile  = "progressive.txt"
	conjugationsFile = "conjugations.txt"
)

// dataSource opens data files from a directory, falling back to the
// embedded copy for files the directory does not provide.
type dataSource struct {
	dir fs.FS
}

func newDataSource(dataDir string) dataSource {
	if dataDir == "" {
		return dataSource{}
	}
	return dataSource{dir: os.DirFS(dataDir)}
}

func (s dataSource) open(name string) (fs.File, error) {
	if s.dir != nil {
		f, err := s.dir.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
	}
	f, err := builtinData.Open(path.Join("data", name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// eachLine calls fn for every non-blank, non-comment line of the named
// file. Comments start with "!". fn receives the 1-based line number.
func (s dataSource) eachLine(name string, fn func(n int, line string) error) error {
	f, err := s.open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return scanLines(f, func(n int, line string) error {
		if err := fn(n, line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
		return nil
	})
}

func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// loadLexicon reads the three vocabulary files.
func (s dataSource) loadLexicon() (*Lexicon, error) {
	lex := newLexicon()

	err := s.eachLine(adjectivesFile, func(_ int, line string) error {
		a, err := newAdjective(line)
		if err != nil {
			return err
		}
		if _, dup := lex.adjectives[a.English]; dup {
			return fmt.Errorf("duplicate adjective %q", a.English)
		}
		lex.adjectives[a.English] = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.eachLine(nounsFile, func(_ int, line string) error {
		n, err := newNoun(line)
		if err != nil {
			return err
		}
		if _, dup := lex.nouns[n.English]; dup {
			return fmt.Errorf("duplicate noun %q", n.English)
		}
		lex.nouns[n.English] = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.eachLine(progressiveFile, func(_ int, line string) error {
		v, err := newProgressiveVerb(line)
		if err != nil {
			return err
		}
		if _, dup := lex.verbs[v.Ing]; dup {
			return fmt.Errorf("duplicate -ing verb %q", v.Ing)
		}
		lex.verbs[v.Ing] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lex, nil
}

// loadConjugations reads conjugations.txt. Blocks start at each "verb:"
// line and run until the next one or EOF.
func (s dataSource) loadConjugations() (*ConjugationTable, error) {
	table := newConjugationTable()

	var block []string
	start := 0
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		p, err := parseParadigm(block)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", conjugationsFile, start, err)
		}
		if _, dup := table.paradigms[p.Infinitive]; dup {
			return fmt.Errorf("%s:%d: duplicate verb %q", conjugationsFile, start, p.Infinitive)
		}
		table.paradigms[p.Infinitive] = p
		block = block[:0]
		return nil
	}

	f, err := s.open(conjugationsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	err = scanLines(f, func(n int, line string) error {
		if strings.HasPrefix(line, "verb:") {
			if err := flush(); err != nil {
				return err
			}
			start = n
		}
		block = append(block, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return table, nil
}
