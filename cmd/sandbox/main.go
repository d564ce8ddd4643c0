package main

import (
	"fmt"
	"os"

	"sandbox/internal/app"
)

func main() {
	fmt.Println("Sandbox - WebGPU voxel viewer")
	fmt.Println("Controls:")
	fmt.Println("  Mouse         : Look")
	fmt.Println("  WASD          : Move")
	fmt.Println("  Space / Shift : Fly up / down")
	fmt.Println("  Arrow keys    : Look")
	fmt.Println("  P             : Print frame time")
	fmt.Println("  Escape        : Exit")
	fmt.Println()

	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Cleanup()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
