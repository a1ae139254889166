// Command gridpath solves grid path-finding puzzles with the dijkstra engine.
//
//	gridpath -day 16 maze.txt
//	gridpath -day 18 -bytes 1024 memory.txt
//	gridpath -day 20 -threshold 100 -cheat 20 track.txt
//
// Each file is solved in its own goroutine; answers are printed in argument
// order, one line per file.
package main

import "os"

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
