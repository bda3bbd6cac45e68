// Command apt-inspect parses APT metadata files and prints the typed
// result as JSON. It understands control stanzas, Packages indices
// (plain, .gz, or .zst), Release and clearsigned InRelease files, and
// .deb archives.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/etnz/apt-parse/deb"
	"github.com/etnz/apt-parse/index"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "control":
		runControl(os.Args[2:])
	case "packages":
		runPackages(os.Args[2:])
	case "release":
		runRelease(os.Args[2:])
	case "deb":
		runDeb(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

// printUsage prints the help message to stdout.
func printUsage() {
	fmt.Println("Usage: apt-inspect <command> [flags] <file>")
	fmt.Println("\nCommands:")
	fmt.Println("  control   Parse a control stanza")
	fmt.Println("  packages  Parse a Packages index (plain, .gz or .zst)")
	fmt.Println("  release   Parse a Release file (use -keyring for InRelease)")
	fmt.Println("  deb       Parse the control metadata of a .deb archive")
	fmt.Println("  check     Validate every file listed in a YAML manifest")
}

func fatal(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("Fatal: encoding result: %v", err)
	}
	fmt.Println(string(out))
}

func readArg(fs *flag.FlagSet) []byte {
	if fs.NArg() != 1 {
		fatal("Fatal: expected exactly one file argument")
	}
	content, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatal("Fatal: %v", err)
	}
	return content
}

func runControl(args []string) {
	fs := flag.NewFlagSet("control", flag.ExitOnError)
	fs.Parse(args)

	c, err := index.ParseControl(string(readArg(fs)))
	if err != nil {
		fatal("Fatal: %v", err)
	}
	printJSON(c)
}

func runPackages(args []string) {
	fs := flag.NewFlagSet("packages", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fatal("Fatal: expected exactly one file argument")
	}
	path := fs.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fatal("Fatal: %v", err)
	}
	defer f.Close()

	pkgs, err := index.ReadPackages(f, path)
	if err != nil {
		fatal("Fatal: %v", err)
	}
	printJSON(pkgs)
}

func runRelease(args []string) {
	fs := flag.NewFlagSet("release", flag.ExitOnError)
	keyring := fs.String("keyring", "", "Armored public keyring; treats the input as clearsigned InRelease")
	fs.Parse(args)

	content := readArg(fs)
	rel, err := parseRelease(content, *keyring)
	if err != nil {
		fatal("Fatal: %v", err)
	}
	printJSON(rel)
}

func parseRelease(content []byte, keyringPath string) (*index.Release, error) {
	if keyringPath == "" {
		return index.ParseRelease(string(content))
	}
	kr, err := os.Open(keyringPath)
	if err != nil {
		return nil, err
	}
	defer kr.Close()
	return index.ParseInRelease(content, kr)
}

func runDeb(args []string) {
	fs := flag.NewFlagSet("deb", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fatal("Fatal: expected exactly one file argument")
	}

	c, err := deb.ReadControlFile(fs.Arg(0))
	if err != nil {
		fatal("Fatal: %v", err)
	}
	printJSON(c)
}

// Manifest lists metadata files to validate in one run.
type Manifest struct {
	// Keyring is an optional armored public keyring used for entries of
	// kind "inrelease".
	Keyring string `json:"keyring" yaml:"keyring"`
	// Files is the list of metadata files to validate.
	Files []ManifestFile `json:"files" yaml:"files"`
}

// ManifestFile is one entry of a validation manifest.
type ManifestFile struct {
	// Path to the metadata file, relative to the manifest.
	Path string `json:"path" yaml:"path"`
	// Kind selects the parser: control, packages, release, inrelease, or deb.
	Kind string `json:"kind" yaml:"kind"`
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	manifestPath := fs.String("manifest", "apt-inspect.yaml", "Path to the validation manifest")
	fs.Parse(args)

	content, err := os.ReadFile(*manifestPath)
	if err != nil {
		fatal("Fatal: could not read manifest: %v", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		fatal("Fatal: could not parse manifest %s: %v", *manifestPath, err)
	}

	failed := 0
	for _, entry := range manifest.Files {
		if err := checkFile(entry, manifest.Keyring); err != nil {
			fmt.Printf("FAIL %s (%s): %v\n", entry.Path, entry.Kind, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s (%s)\n", entry.Path, entry.Kind)
	}
	if failed > 0 {
		fatal("%d of %d file(s) failed validation", failed, len(manifest.Files))
	}
}

func checkFile(entry ManifestFile, keyring string) error {
	switch entry.Kind {
	case "control":
		content, err := os.ReadFile(entry.Path)
		if err != nil {
			return err
		}
		_, err = index.ParseControl(string(content))
		return err
	case "packages":
		f, err := os.Open(entry.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = index.ReadPackages(f, entry.Path)
		return err
	case "release":
		content, err := os.ReadFile(entry.Path)
		if err != nil {
			return err
		}
		_, err = index.ParseRelease(string(content))
		return err
	case "inrelease":
		content, err := os.ReadFile(entry.Path)
		if err != nil {
			return err
		}
		_, err = parseRelease(content, keyring)
		return err
	case "deb":
		_, err := deb.ReadControlFile(entry.Path)
		return err
	default:
		return fmt.Errorf("unknown kind %q", entry.Kind)
	}
}
