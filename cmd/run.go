package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"

	"github.com/smarthome-go/knitscript/knitscript"
	"github.com/smarthome-go/knitscript/knitscript/config"
	"github.com/smarthome-go/knitscript/knitscript/diagnostic"
	kserrors "github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/interpreter"
)

func runFile(filename string, conf config.Config, output io.Writer) error {
	file, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	program := string(file)

	baseDir := conf.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(filename)
	}

	executor := knitscript.NewOsExecutor(baseDir, output)

	start := time.Now()
	_, errs := knitscript.Run(executor, interpreter.DefaultRegistry(), program, filename, conf.KeepGoing)
	log.Printf("Finished execution: elapsed: %v\n", time.Since(start))

	return reportErrors(errs, program, filename, output)
}

func parseFile(filename string, conf config.Config, output io.Writer) error {
	file, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	program := string(file)

	start := time.Now()
	tree, syntaxErr := knitscript.Parse(program, filename)
	log.Printf("Finished parsing: elapsed: %v\n", time.Since(start))

	if syntaxErr != nil {
		return reportErrors([]kserrors.Error{*syntaxErr}, program, filename, output)
	}

	if conf.DumpAST {
		fmt.Fprintln(output, spew.Sdump(tree))
	} else {
		fmt.Fprintln(output, tree)
	}

	return nil
}

// Prints every error as a diagnostic and merges them into one error.
func reportErrors(errs []kserrors.Error, program string, filename string, output io.Writer) error {
	if len(errs) == 0 {
		return nil
	}

	var result *multierror.Error
	for idx := range errs {
		err := errs[idx]
		fmt.Fprintln(output, diagnostic.FromError(err, filename).Display(program))
		result = multierror.Append(result, &err)
	}

	if errs[0].Kind.IsSyntax() {
		return errors.New("Encountered syntax error")
	}

	return result.ErrorOrNil()
}
