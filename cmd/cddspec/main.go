// Command cddspec validates OpenAPI specification documents and inspects
// their resolved schemas.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cddspec "github.com/offscale/cdd-web-ng-sub003"
	"github.com/offscale/cdd-web-ng-sub003/internal/mcpserver"
	"github.com/offscale/cdd-web-ng-sub003/resolver"
	"github.com/offscale/cdd-web-ng-sub003/spec"
	"github.com/offscale/cdd-web-ng-sub003/validator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("cddspec v%s\n", cddspec.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		if err := handleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "schemas":
		if err := handleSchemas(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	quiet := fs.Bool("quiet", false, "suppress success output")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: cddspec validate [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Validate an OpenAPI specification document.\n")
		_, _ = fmt.Fprintf(output, "Exits 1 with the first violation when the document is invalid.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  cddspec validate openapi.yaml\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path")
	}

	specPath := fs.Arg(0)
	doc, err := spec.ParseFile(specPath)
	if err != nil {
		return err
	}
	if err := validator.Validate(doc); err != nil {
		return err
	}
	if !*quiet {
		fmt.Printf("%s is a valid OpenAPI %s document\n", specPath, doc.OASVersion)
	}
	return nil
}

func handleSchemas(args []string) error {
	fs := flag.NewFlagSet("schemas", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "emit the schema list as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: cddspec schemas [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "List the named schemas of a document in stable order:\n")
		_, _ = fmt.Fprintf(output, "component schemas sorted by name, then synthesized names for\n")
		_, _ = fmt.Fprintf(output, "inline request/response body schemas.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  cddspec schemas openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  cddspec schemas --json openapi.yaml\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schemas command requires exactly one file path")
	}

	doc, err := spec.ParseFile(fs.Arg(0))
	if err != nil {
		return err
	}
	r, err := resolver.New(doc)
	if err != nil {
		return err
	}
	named := r.Schemas()

	if *asJSON {
		type entry struct {
			Name       string `json:"name"`
			Type       string `json:"type,omitempty"`
			Properties int    `json:"properties,omitempty"`
		}
		entries := make([]entry, 0, len(named))
		for _, ns := range named {
			e := entry{Name: ns.Name, Properties: len(ns.Schema.Properties)}
			if typeName, ok := ns.Schema.Type.(string); ok {
				e.Type = typeName
			}
			entries = append(entries, e)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, ns := range named {
		fmt.Println(ns.Name)
	}
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Printf("cddspec v%s - OpenAPI specification validator and schema resolver\n\n", cddspec.Version())
	fmt.Println("Usage:")
	fmt.Println("  cddspec <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate <file>   Validate an OpenAPI specification document")
	fmt.Println("  schemas <file>    List the document's named schemas in stable order")
	fmt.Println("  mcp               Run the MCP server over stdio")
	fmt.Println("  version           Print version information")
	fmt.Println("  help              Show this help message")
	fmt.Println()
	fmt.Println("Run 'cddspec <command> -h' for command-specific flags.")
}
