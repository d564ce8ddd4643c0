// Command worldgen pre-generates a square region of sectors into the
// world directory so the viewer starts with terrain already on disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"sandbox/internal/world"
	"sandbox/pkg/sectors"
)

func main() {
	dir := flag.String("dir", ".world", "world directory to write sectors into")
	seed := flag.Int64("seed", 1, "world seed")
	radius := flag.Int("radius", 8, "horizontal radius in sectors around the origin")
	flag.Parse()

	store, err := world.NewStore(*dir, *seed, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	side := 2*(*radius) + 1
	// Surface slab plus one sector of stone below and air above
	total := side * side * 3

	fmt.Printf("Generating %d sectors (radius %d, seed %d) into %s\n", total, *radius, *seed, *dir)
	bar := progressbar.Default(int64(total))

	generated := 0
	for z := -*radius; z <= *radius; z++ {
		for x := -*radius; x <= *radius; x++ {
			for y := -2; y <= 0; y++ {
				idx := sectors.Index{X: x, Y: y, Z: z}
				if !store.IsCached(idx) {
					if _, err := store.GetSector(idx); err != nil {
						fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", idx.String(), err)
						os.Exit(1)
					}
					generated++
				}
				bar.Add(1)
			}
		}
	}

	fmt.Printf("Done: %d newly generated, %d already cached\n", generated, total-generated)
}
