// +build mage

package main

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/mattn/go-shellwords"
	"github.com/mattn/go-zglob"
)

func init() {
	os.Setenv("GO111MODULE", "on")
}

func runVWithArgs(cmd string, args ...string) error {
	envArgs, err := shellwords.Parse(os.Getenv("ARGS"))
	if err != nil {
		return err
	}
	return sh.RunV(cmd, append(args, envArgs...)...)
}

func sources() ([]string, error) {
	files, err := zglob.Glob("./**/*.go")
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, file := range files {
		if ok, err := zglob.Match("./_examples/**", file); ok || err != nil {
			continue
		}
		result = append(result, file)
	}
	return result, nil
}

// Format code
func Fmt() error {
	files, err := sources()
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := sh.RunV("goimports", "-w", file); err != nil {
			return err
		}
	}
	return nil
}

// Check coding style
func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Run test
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Round-trip check the M8 files given in ARGS
func Check() error {
	return runVWithArgs("go", "run", ".", "check")
}

// Run program
func Run() error {
	return runVWithArgs("go", "run", ".")
}

// Build binary
func Build() error {
	return sh.RunV("go", "build", ".")
}
