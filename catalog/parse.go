package catalog

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/errors"
)

// Source is one namespace's declaration text.
type Source struct {
	Namespace Namespace
	Text      string
}

type decl struct {
	name   string
	params []Param
	result abi.Kind
	line   int
}

var (
	interfacePattern = regexp.MustCompile(`^interface\s+([a-zA-Z_][a-zA-Z0-9_-]*)\s*\{$`)
	funcPattern      = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*func\s*\(([^)]*)\)(?:\s*->\s*([^;]+))?\s*;$`)
)

// parseDecls extracts function declarations, in order, from a single
// interface block. Line comments are ignored.
func parseDecls(text string) (string, []decl, error) {
	var (
		iface  string
		decls  []decl
		open   bool
		closed bool
		seen   = make(map[string]int)
	)

	sc := bufio.NewScanner(strings.NewReader(text))
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case !open:
			m := interfacePattern.FindStringSubmatch(line)
			if m == nil {
				return "", nil, syntaxError(n, "expected interface header, got %q", line)
			}
			iface, open = m[1], true
		case closed:
			return "", nil, syntaxError(n, "content after end of interface %s", iface)
		case line == "}":
			closed = true
		default:
			d, err := parseDecl(line, n)
			if err != nil {
				return "", nil, err
			}
			if prev, dup := seen[d.name]; dup {
				return "", nil, syntaxError(n, "%s already declared on line %d", d.name, prev)
			}
			seen[d.name] = n
			decls = append(decls, d)
		}
	}
	if err := sc.Err(); err != nil {
		return "", nil, errors.Wrap(errors.PhaseCatalog, errors.KindInvalidData, err, "read declarations")
	}
	if !open || !closed {
		return "", nil, errors.InvalidData(errors.PhaseCatalog, nil, "unterminated interface block")
	}
	return iface, decls, nil
}

func parseDecl(line string, n int) (decl, error) {
	m := funcPattern.FindStringSubmatch(line)
	if m == nil {
		return decl{}, syntaxError(n, "malformed declaration %q", line)
	}
	d := decl{name: m[1], line: n}

	if params := strings.TrimSpace(m[2]); params != "" {
		for _, p := range strings.Split(params, ",") {
			name, typ, ok := strings.Cut(p, ":")
			if !ok {
				return decl{}, syntaxError(n, "%s: parameter %q has no type", d.name, strings.TrimSpace(p))
			}
			k, err := abi.ParseKind(strings.TrimSpace(typ))
			if err != nil {
				return decl{}, errors.New(errors.PhaseCatalog, errors.KindInvalidData).
					Path("line", strconv.Itoa(n)).
					Op(d.name).
					Cause(err).
					Detail("parameter %s", strings.TrimSpace(name)).
					Build()
			}
			d.params = append(d.params, Param{Name: strings.TrimSpace(name), Kind: k})
		}
	}

	if r := strings.TrimSpace(m[3]); r != "" {
		k, err := abi.ParseKind(r)
		if err != nil {
			return decl{}, errors.New(errors.PhaseCatalog, errors.KindInvalidData).
				Path("line", strconv.Itoa(n)).
				Op(d.name).
				Cause(err).
				Detail("result").
				Build()
		}
		d.result = k
	}
	return d, nil
}

func syntaxError(line int, format string, args ...any) *errors.Error {
	return errors.New(errors.PhaseCatalog, errors.KindInvalidData).
		Path("line", strconv.Itoa(line)).
		Detail(format, args...).
		Build()
}
