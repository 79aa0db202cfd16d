// gen_expects writes a free function wrapper for every with* and expect*
// method of programTestCase, so that options may be passed around as values:
//
//	go run scripts/gen_expects.go program_test.go program_expects_test.go
package main

import (
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var builderMethod = regexp.MustCompile(`(?m)^func \(\w+ programTestCase\) (expect|with)(\w+)\((.+)\) programTestCase \{$`)

var wrappers = template.Must(template.New("wrappers").Parse(`package intcode

// @generated from {{ .Source }}

//go:generate go run scripts/gen_expects.go {{ .Source }} {{ .Dest }}
{{ range .Methods }}
func {{ .Verb }}Prog{{ .What }}({{ .Params }}) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.{{ .Verb }}{{ .What }}({{ .Args }})
	}
}
{{ end }}`))

type method struct{ Verb, What, Params, Args string }

// callArgs turns a parameter list like "addr int64, values ...int64" into
// the matching call arguments "addr, values...".
func callArgs(params string) string {
	var args []string
	for _, param := range strings.Split(params, ",") {
		fields := strings.Fields(param)
		arg := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}
	return strings.Join(args, ", ")
}

func generate(ctx context.Context, src, dest string) error {
	code, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	data := struct {
		Source, Dest string
		Methods      []method
	}{Source: src, Dest: dest}
	for _, match := range builderMethod.FindAllStringSubmatch(string(code), -1) {
		data.Methods = append(data.Methods, method{match[1], match[2], match[3], callArgs(match[3])})
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	pr, pw := io.Pipe()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		goimports := exec.CommandContext(ctx, "goimports")
		goimports.Stdin = pr
		goimports.Stdout = out
		goimports.Stderr = os.Stderr
		err := goimports.Run()
		pr.CloseWithError(err)
		return err
	})
	eg.Go(func() error {
		err := wrappers.Execute(pw, data)
		pw.CloseWithError(err)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	return out.Close()
}

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %v SOURCE DEST", os.Args[0])
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := generate(ctx, os.Args[1], os.Args[2]); err != nil {
		log.Fatalln(err)
	}
}
