package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/overworld/worlds"
)

// worldlint checks authored world files for the defects the engine only
// papers over at runtime: dangling neighbour and warp references,
// cross-depth neighbour edges, and overlapping same-depth level bounds.
func main() {
	embedded := flag.String("embedded", "", "check an embedded world by name instead of a file")
	flag.Parse()

	var (
		project *worlds.Project
		source  string
		err     error
	)
	switch {
	case *embedded != "":
		source = *embedded
		project, err = worlds.LoadEmbedded(*embedded)
	case flag.NArg() == 1:
		source = flag.Arg(0)
		project, err = worlds.LoadFile(source)
	default:
		fmt.Fprintln(os.Stderr, "usage: worldlint [-embedded name | file.json]")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldlint: %v\n", err)
		os.Exit(1)
	}

	problems := project.Validate()
	for _, p := range problems {
		fmt.Printf("%s: %s\n", source, p)
	}
	if len(problems) > 0 {
		fmt.Printf("%d problem(s)\n", len(problems))
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%d levels)\n", source, len(project.Levels))
}
