package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("serdectl", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "Path to YAML configuration file (default: serde.yaml when present)")
	envFile := global.String("env", "", "Optional .env file with SERDE_* variables")
	global.Usage = func() { printUsage(stderr) }

	if err := global.Parse(args); err != nil {
		return 1
	}

	rest := global.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return 1
	}

	command, commandArgs := rest[0], rest[1:]
	if command == "version" {
		versionCommand(stdout)
		return 0
	}

	env, err := newEnvironment(*configPath, *envFile, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	switch command {
	case "list":
		err = listCommand(env, commandArgs, stdout)
	case "decode":
		err = decodeCommand(env, commandArgs, stdout)
	case "encode":
		err = encodeCommand(env, commandArgs, stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s failed: %v\n", command, err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: serdectl [-config file] [-env file] <command> [options]\n")
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  list      List known services and characteristics\n")
	fmt.Fprintf(w, "  decode    Decode a hex payload into string values\n")
	fmt.Fprintf(w, "  encode    Encode key=value pairs into a hex payload\n")
	fmt.Fprintf(w, "  version   Show version information\n")
	fmt.Fprintf(w, "\nRun 'serdectl <command> -h' for help on a specific command.\n")
}
